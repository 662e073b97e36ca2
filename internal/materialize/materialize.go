// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package materialize converts parsed JSON values into generic record
// values conforming to an Avro schema.
//
// Field-level mismatches (unmapped names, values no widening reaches) are
// reported to the diagnostic sink and the field is omitted; only an
// unresolvable top-level shape is an error.
package materialize

import (
	"fmt"

	"github.com/hamba/avro/v2"

	"github.com/dacolabs/davro/internal/diag"
	"github.com/dacolabs/davro/internal/jnode"
)

// Materializer walks JSON values against a schema shape. It holds no
// per-document state and may be reused across an ingestion pass.
type Materializer struct {
	sink diag.Sink
}

// New returns a Materializer reporting diagnostics to sink.
func New(sink diag.Sink) *Materializer {
	return &Materializer{sink: sink}
}

// Record converts a JSON object into a record conforming to schema, which
// must name a record directly or through a union branch. The container
// label only appears in diagnostics.
func (m *Materializer) Record(n *jnode.Node, schema avro.Schema, container string) (map[string]any, error) {
	rec := resolveRecord(schema)
	if rec == nil {
		return nil, fmt.Errorf("schema %q does not name a record", schema.String())
	}

	fields := make(map[string]*avro.Field, len(rec.Fields()))
	for _, f := range rec.Fields() {
		fields[f.Name()] = f
	}

	out := make(map[string]any, len(rec.Fields()))
	for _, member := range n.Members() {
		field, ok := fields[member.Name]
		if !ok {
			m.sink.Warnf("skipping unmapped field %s contained in %s", member.Name, container)
			continue
		}
		if v, ok := m.Value(member.Value, field.Type(), member.Name, container); ok {
			out[member.Name] = v
		}
	}

	complete(out, rec)
	return out, nil
}

// Array converts a JSON array into a sequence conforming to schema, which
// must name an array directly or through a union branch. Elements that miss
// coercion are omitted, so the output may be shorter than the input.
func (m *Materializer) Array(n *jnode.Node, schema avro.Schema, container string) ([]any, error) {
	arr := resolveArray(schema)
	if arr == nil {
		return nil, fmt.Errorf("schema %q does not name an array", schema.String())
	}

	elem := arr.Items()
	out := make([]any, 0, len(n.Items()))
	for _, item := range n.Items() {
		if v, ok := m.Value(item, elem, container, container); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Value materializes one JSON value against the target shape, dispatching
// on the node kind. The returned value is ready for the container encoder,
// wrapped with its branch name when the target is a union. ok is false when
// the value must be omitted; mismatches have already been reported, nulls
// are omitted silently.
func (m *Materializer) Value(n *jnode.Node, target avro.Schema, name, container string) (any, bool) {
	switch n.Kind() {
	case jnode.KindObject:
		branch := resolveRecord(target)
		if branch == nil {
			m.sink.Warnf("Can't store a record in field %s contained in %s", name, container)
			return nil, false
		}
		nested, err := m.Record(n, target, name)
		if err != nil {
			m.sink.Warnf("Can't store a record in field %s contained in %s", name, container)
			return nil, false
		}
		return wrap(target, unionKey(branch), nested), true

	case jnode.KindArray:
		branch := resolveArray(target)
		if branch == nil {
			m.sink.Warnf("Can't store an array in field %s contained in %s", name, container)
			return nil, false
		}
		nested, err := m.Array(n, target, name)
		if err != nil {
			m.sink.Warnf("Can't store an array in field %s contained in %s", name, container)
			return nil, false
		}
		return wrap(target, unionKey(branch), nested), true

	case jnode.KindNull:
		return nil, false

	default:
		v, matched, ok := coerceScalar(n, target)
		if !ok {
			m.sink.Warnf("Can't store a %s in field %s contained in %s", n.Kind(), name, container)
			return nil, false
		}
		return wrap(target, string(matched), v), true
	}
}

// wrap adds the generic-encoder union envelope when the declared target is
// a union; plain shapes store the bare value.
func wrap(target avro.Schema, key string, v any) any {
	if deref(target).Type() == avro.Union {
		return map[string]any{key: v}
	}
	return v
}

// Envelope prepares a top-level record for a writer opened with schema:
// when schema is a union the encoder needs the branch name around the
// record, the same envelope union-typed fields get. The caller must have
// materialized rec against schema, so the record branch resolves.
func Envelope(schema avro.Schema, rec map[string]any) any {
	if deref(schema).Type() != avro.Union {
		return rec
	}
	return map[string]any{unionKey(resolveRecord(schema)): rec}
}

// complete fills an explicit null into schema fields the input never set,
// when the field's shape admits null. The binary encoder needs every field
// present; a null here is observably the same as unset. Fields whose shape
// has no null branch stay absent and surface at append time, as they must.
func complete(out map[string]any, rec *avro.RecordSchema) {
	for _, f := range rec.Fields() {
		if _, ok := out[f.Name()]; ok {
			continue
		}
		if accepts(f.Type(), avro.Null) {
			out[f.Name()] = nil
		}
	}
}
