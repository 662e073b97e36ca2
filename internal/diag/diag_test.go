// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWriter_OneLinePerDiagnostic(t *testing.T) {
	var buf strings.Builder
	sink := Writer(&buf)

	sink.Warnf("skipping unmapped field %s contained in %s", "bogus", "line 1")
	sink.Errorf("no container?")

	assert.Equal(t, "skipping unmapped field bogus contained in line 1\nno container?\n", buf.String())
}

func TestRecorder_Captures(t *testing.T) {
	rec := &Recorder{}

	rec.Warnf("warn %d", 1)
	rec.Warnf("warn %d", 2)
	rec.Errorf("boom")

	assert.Equal(t, []string{"warn 1", "warn 2"}, rec.Warnings)
	assert.Equal(t, []string{"boom"}, rec.Errors)
}

func TestZap_DoesNotPanic(t *testing.T) {
	sink := Zap(zap.NewNop().Sugar())
	sink.Warnf("warn %s", "x")
	sink.Errorf("err %s", "y")
}
