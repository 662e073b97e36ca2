// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package materialize

import (
	"github.com/hamba/avro/v2"

	"github.com/dacolabs/davro/internal/jnode"
)

// widening lists, per JSON scalar kind, the schema kinds the value may land
// in, in precedence order. The first kind the target shape accepts wins.
var widening = map[jnode.Kind][]avro.Type{
	jnode.KindInt:    {avro.Int, avro.Long, avro.Float, avro.Double},
	jnode.KindLong:   {avro.Long, avro.Float, avro.Double},
	jnode.KindDouble: {avro.Double, avro.Float},
	jnode.KindBool:   {avro.Boolean},
	jnode.KindBytes:  {avro.Bytes},
	jnode.KindString: {avro.String},
}

// coerceScalar fits a scalar node into the first kind the target shape
// accepts, widening as needed. ok is false on a coercion miss; the caller
// owns the warning and leaves the field unset.
func coerceScalar(n *jnode.Node, target avro.Schema) (v any, matched avro.Type, ok bool) {
	for _, t := range widening[n.Kind()] {
		if accepts(target, t) {
			return convert(n, t), t, true
		}
	}
	return nil, "", false
}

// convert widens the node's value to t. Numeric widenings are casts, never
// string round trips. Callers only pass combinations present in widening.
func convert(n *jnode.Node, t avro.Type) any {
	switch n.Kind() {
	case jnode.KindInt:
		switch t {
		case avro.Int:
			return int(n.Int())
		case avro.Long:
			return int64(n.Int())
		case avro.Float:
			return float32(n.Int())
		case avro.Double:
			return float64(n.Int())
		}
	case jnode.KindLong:
		switch t {
		case avro.Long:
			return n.Long()
		case avro.Float:
			return float32(n.Long())
		case avro.Double:
			return float64(n.Long())
		}
	case jnode.KindDouble:
		switch t {
		case avro.Double:
			return n.Double()
		case avro.Float:
			return float32(n.Double())
		}
	case jnode.KindBool:
		return n.Bool()
	case jnode.KindBytes:
		return n.Bytes()
	case jnode.KindString:
		return n.Str()
	}
	return nil
}
