// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jnode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Decoder yields the JSON documents contained in one line of input.
// A line may carry several whitespace-separated documents; each Next call
// returns one of them.
type Decoder struct {
	dec *json.Decoder
}

// NewDecoder decodes the documents on a single line of text.
func NewDecoder(line string) *Decoder {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// Next returns the next document on the line, or io.EOF once the line is
// exhausted. Any other error means the line is not valid JSON.
func (d *Decoder) Next() (*Node, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	return d.node(tok)
}

// token reads the next token inside a document, where running out of input
// is a syntax error rather than a clean end.
func (d *Decoder) token() (json.Token, error) {
	tok, err := d.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (d *Decoder) node(tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object()
		case '[':
			return d.array()
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case json.Number:
		return number(t)
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// object consumes members up to the closing brace. Token-stream walking
// keeps the members in source order, which a map decode would lose.
func (d *Decoder) object() (*Node, error) {
	var members []Member
	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		tok, err = d.token()
		if err != nil {
			return nil, err
		}
		value, err := d.node(tok)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Name: name, Value: value})
	}
	if _, err := d.token(); err != nil { // closing '}'
		return nil, err
	}
	return Object(members...), nil
}

func (d *Decoder) array() (*Node, error) {
	var items []*Node
	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return nil, err
		}
		value, err := d.node(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	if _, err := d.token(); err != nil { // closing ']'
		return nil, err
	}
	return Array(items...), nil
}

// number classifies a JSON number the way the widening tables expect:
// int when it fits 32 bits, long when it fits 64, double otherwise or when
// the literal has a fraction or exponent.
func number(num json.Number) (*Node, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return Int(int32(i)), nil
			}
			return Long(i), nil
		}
	}
	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Double(f), nil
}
