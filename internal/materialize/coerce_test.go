// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package materialize

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/davro/internal/jnode"
)

func TestCoerceScalar_WideningPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		node    *jnode.Node
		schema  string
		want    any
		matched avro.Type
	}{
		{"int into int", jnode.Int(7), `"int"`, int(7), avro.Int},
		{"int into long", jnode.Int(7), `"long"`, int64(7), avro.Long},
		{"int into float", jnode.Int(7), `"float"`, float32(7), avro.Float},
		{"int into double", jnode.Int(7), `"double"`, float64(7), avro.Double},
		{"int prefers int over long", jnode.Int(7), `["long","int"]`, int(7), avro.Int},
		{"long into long", jnode.Long(1 << 40), `"long"`, int64(1 << 40), avro.Long},
		{"long into float before double", jnode.Long(8), `["double","float"]`, float32(8), avro.Float},
		{"long into double", jnode.Long(8), `"double"`, float64(8), avro.Double},
		{"double into double", jnode.Double(2.5), `"double"`, 2.5, avro.Double},
		{"double into float", jnode.Double(2.5), `"float"`, float32(2.5), avro.Float},
		{"double prefers double", jnode.Double(2.5), `["float","double"]`, 2.5, avro.Double},
		{"bool into boolean", jnode.Bool(true), `"boolean"`, true, avro.Boolean},
		{"string into string", jnode.String("x"), `"string"`, "x", avro.String},
		{"bytes into bytes", jnode.Bytes([]byte{1, 2}), `"bytes"`, []byte{1, 2}, avro.Bytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, matched, ok := coerceScalar(tt.node, avro.MustParse(tt.schema))
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestCoerceScalar_Misses(t *testing.T) {
	tests := []struct {
		name   string
		node   *jnode.Node
		schema string
	}{
		{"int into string", jnode.Int(7), `"string"`},
		{"long into int", jnode.Long(1 << 40), `"int"`},
		{"double into long", jnode.Double(2.5), `"long"`},
		{"bool into int", jnode.Bool(true), `"int"`},
		{"string into bytes", jnode.String("x"), `"bytes"`},
		{"int into union of text", jnode.Int(7), `["null","string"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := coerceScalar(tt.node, avro.MustParse(tt.schema))
			assert.False(t, ok)
		})
	}
}

// The long row must not reach int: a 64-bit value presented to an
// int-or-long union lands in long even when int is declared first.
func TestCoerceScalar_LongSkipsInt(t *testing.T) {
	v, matched, ok := coerceScalar(jnode.Long(1<<40), avro.MustParse(`["int","long"]`))
	require.True(t, ok)
	assert.Equal(t, avro.Long, matched)
	assert.Equal(t, int64(1<<40), v)
}
