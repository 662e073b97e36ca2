// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package ingest drives line-oriented JSON ingestion into a record-file
// writer: read a line, parse the documents on it, materialize each against
// the schema, append the results in order.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hamba/avro/v2"

	"github.com/dacolabs/davro/internal/diag"
	"github.com/dacolabs/davro/internal/jnode"
	"github.com/dacolabs/davro/internal/materialize"
)

// Lines are read whole; this caps how long one may get.
const maxLineBytes = 16 * 1024 * 1024

// Writer is the record-file writer ingestion appends to. The caller owns
// flush and close, on every path.
type Writer interface {
	Append(v any) error
}

// rootKind classifies what one input document stands for, derived from the
// schema rather than the document.
type rootKind int

const (
	rootRecord rootKind = iota // objects are records, arrays are batches of records
	rootArray                  // each document is one sequence
	rootScalar                 // each document is one scalar value
)

func classify(schema avro.Schema) rootKind {
	switch {
	case materialize.ResolvesRecord(schema):
		return rootRecord
	case materialize.ResolvesArray(schema):
		return rootArray
	default:
		return rootScalar
	}
}

// Run reads newline-delimited JSON from r until end of stream and appends
// one value per materialized document to w. It returns the number of
// records appended.
//
// A line that fails to parse stops ingestion there: the offending line goes
// to the sink and the parse error is returned. Documents materialized
// before the failure have already been appended.
func Run(r io.Reader, schema avro.Schema, w Writer, sink diag.Sink) (int, error) {
	m := materialize.New(sink)
	root := classify(schema)

	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		dec := jnode.NewDecoder(line)
		for {
			doc, err := dec.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				sink.Errorf("error parsing: %s", line)
				return count, fmt.Errorf("parsing input line: %w", err)
			}

			n, err := emit(m, root, doc, schema, w, sink, line)
			if err != nil {
				return count, err
			}
			count += n
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading input: %w", err)
	}
	return count, nil
}

// emit materializes one parsed document and appends the resulting records.
func emit(m *materialize.Materializer, root rootKind, doc *jnode.Node, schema avro.Schema, w Writer, sink diag.Sink, line string) (int, error) {
	switch root {
	case rootRecord:
		switch doc.Kind() {
		case jnode.KindObject:
			rec, err := m.Record(doc, schema, line)
			if err != nil {
				return 0, err
			}
			return 1, append1(w, materialize.Envelope(schema, rec))
		case jnode.KindArray:
			n := 0
			for _, el := range doc.Items() {
				rec, err := m.Record(el, schema, line)
				if err != nil {
					return n, err
				}
				if err := append1(w, materialize.Envelope(schema, rec)); err != nil {
					return n, err
				}
				n++
			}
			return n, nil
		default:
			sink.Errorf("no container?")
			return 0, nil
		}

	default: // rootArray, rootScalar: one value per document, misses warned and dropped
		v, ok := m.Value(doc, schema, line, line)
		if !ok {
			return 0, nil
		}
		return 1, append1(w, v)
	}
}

func append1(w Writer, v any) error {
	if err := w.Append(v); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return nil
}
