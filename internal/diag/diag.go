// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package diag is the diagnostic sink materialization reports through.
// Passing the sink in explicitly keeps the core free of process-wide
// state: tests capture diagnostics with Recorder, the CLI routes them to
// stderr or a zap logger.
package diag

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink receives non-fatal diagnostics, one message per call.
type Sink interface {
	// Warnf reports a field-level mismatch (unmapped field, coercion miss).
	Warnf(format string, args ...any)
	// Errorf reports a line-level problem (unclassified root, parse failure).
	Errorf(format string, args ...any)
}

// Writer returns a Sink that prints one diagnostic per line to w.
func Writer(w io.Writer) Sink { return &writerSink{w: w} }

type writerSink struct {
	w io.Writer
}

func (s *writerSink) Warnf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

func (s *writerSink) Errorf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// Zap returns a Sink backed by a zap sugared logger.
func Zap(log *zap.SugaredLogger) Sink { return &zapSink{log: log} }

type zapSink struct {
	log *zap.SugaredLogger
}

func (s *zapSink) Warnf(format string, args ...any) { s.log.Warnf(format, args...) }

func (s *zapSink) Errorf(format string, args ...any) { s.log.Errorf(format, args...) }

// Recorder is a Sink that captures diagnostics for assertions in tests.
type Recorder struct {
	Warnings []string
	Errors   []string
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
