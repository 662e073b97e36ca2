// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package container wraps the Avro object container file format: block
// layout, sync markers and codec metadata live in hamba/avro's ocf
// implementation, this package only fixes the codec policy and the
// append/flush/close surface ingestion relies on.
package container

import (
	"fmt"
	"io"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"
)

// Codec names a block compression codec.
type Codec string

// Supported codecs. An empty Codec means no compression.
const (
	CodecNull    Codec = "null"
	CodecDeflate Codec = "deflate"
)

// DefaultLevel is the deflate level used when none is given.
const DefaultLevel = 1

// Writer appends records to an Avro object container file.
type Writer struct {
	enc *ocf.Encoder
}

// NewWriter starts a container on w for schema. The header is written
// immediately, so a writer closed without appends still yields a valid,
// empty container.
func NewWriter(w io.Writer, schema avro.Schema, codec Codec, level int) (*Writer, error) {
	var opts []ocf.EncoderFunc
	switch codec {
	case "", CodecNull:
		opts = append(opts, ocf.WithCodec(ocf.Null))
	case CodecDeflate:
		if level == 0 {
			level = DefaultLevel
		}
		if level < 1 || level > 9 {
			return nil, fmt.Errorf("deflate level %d out of range 1-9", level)
		}
		opts = append(opts, ocf.WithCodec(ocf.Deflate), ocf.WithCompressionLevel(level))
	default:
		return nil, fmt.Errorf("unsupported codec %q", codec)
	}

	enc, err := ocf.NewEncoderWithSchema(schema, w, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating container writer: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Append serializes one record into the current block.
func (w *Writer) Append(v any) error { return w.enc.Encode(v) }

// Flush writes out the current block.
func (w *Writer) Flush() error { return w.enc.Flush() }

// Close flushes and finalizes the container.
func (w *Writer) Close() error { return w.enc.Close() }
