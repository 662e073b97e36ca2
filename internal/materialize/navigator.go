// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package materialize

import "github.com/hamba/avro/v2"

// deref unwraps references to previously defined named schemas.
func deref(s avro.Schema) avro.Schema {
	if ref, ok := s.(*avro.RefSchema); ok {
		return ref.Schema()
	}
	return s
}

// resolveRecord returns the record shape s names: s itself when it is a
// record, or the first record alternative in declaration order when s is a
// union. Nil when neither applies. One union level only, no backtracking.
func resolveRecord(s avro.Schema) *avro.RecordSchema {
	s = deref(s)
	if rec, ok := s.(*avro.RecordSchema); ok {
		return rec
	}
	if union, ok := s.(*avro.UnionSchema); ok {
		for _, alt := range union.Types() {
			if rec, ok := deref(alt).(*avro.RecordSchema); ok {
				return rec
			}
		}
	}
	return nil
}

// resolveArray is resolveRecord for array shapes.
func resolveArray(s avro.Schema) *avro.ArraySchema {
	s = deref(s)
	if arr, ok := s.(*avro.ArraySchema); ok {
		return arr
	}
	if union, ok := s.(*avro.UnionSchema); ok {
		for _, alt := range union.Types() {
			if arr, ok := deref(alt).(*avro.ArraySchema); ok {
				return arr
			}
		}
	}
	return nil
}

// ResolvesRecord reports whether s names a record, directly or through a
// union branch.
func ResolvesRecord(s avro.Schema) bool { return resolveRecord(s) != nil }

// ResolvesArray reports whether s names an array, directly or through a
// union branch.
func ResolvesArray(s avro.Schema) bool { return resolveArray(s) != nil }

// accepts reports whether s is of type t, or is a union holding an
// alternative of type t. Nested unions are not searched.
func accepts(s avro.Schema, t avro.Type) bool {
	s = deref(s)
	if s.Type() == t {
		return true
	}
	if union, ok := s.(*avro.UnionSchema); ok {
		for _, alt := range union.Types() {
			if deref(alt).Type() == t {
				return true
			}
		}
	}
	return false
}

// unionKey is the name the generic container encoder expects for a value
// stored under a union branch.
func unionKey(s avro.Schema) string {
	s = deref(s)
	if named, ok := s.(avro.NamedSchema); ok {
		return named.FullName()
	}
	switch s.Type() {
	case avro.Array:
		return "array"
	case avro.Map:
		return "map"
	default:
		return string(s.Type())
	}
}
