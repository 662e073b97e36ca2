// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package container

import (
	"fmt"
	"io"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"
)

// Reader iterates the records of an Avro object container file.
type Reader struct {
	dec *ocf.Decoder
}

// NewReader opens a container for reading, validating its header.
func NewReader(r io.Reader) (*Reader, error) {
	dec, err := ocf.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening container: %w", err)
	}
	return &Reader{dec: dec}, nil
}

// Schema returns the writer schema recorded in the container header.
func (r *Reader) Schema() (avro.Schema, error) {
	raw, ok := r.dec.Metadata()["avro.schema"]
	if !ok {
		return nil, fmt.Errorf("container has no schema metadata")
	}
	return avro.Parse(string(raw))
}

// Codec returns the codec named in the container metadata, CodecNull when
// the entry is absent.
func (r *Reader) Codec() Codec {
	if raw, ok := r.dec.Metadata()["avro.codec"]; ok && len(raw) > 0 {
		return Codec(raw)
	}
	return CodecNull
}

// Next reports whether another record is available.
func (r *Reader) Next() bool { return r.dec.HasNext() }

// Decode reads the next record as a generic value.
func (r *Reader) Decode() (any, error) {
	var v any
	if err := r.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Err returns the first error hit while iterating, if any.
func (r *Reader) Err() error { return r.dec.Error() }
