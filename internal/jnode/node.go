// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jnode models parsed JSON documents as a tree with an explicit
// node-kind tag, preserving object member order.
package jnode

// Kind identifies the variant a Node holds.
type Kind int

// Node kinds. Numbers are split three ways the same way the materializer's
// widening tables are keyed: int (fits 32 bits), long, double.
const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindInt
	KindLong
	KindDouble
	KindBool
	KindString
	KindBytes
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindObject: "object",
	KindArray:  "array",
	KindInt:    "int",
	KindLong:   "long",
	KindDouble: "double",
	KindBool:   "boolean",
	KindString: "string",
	KindBytes:  "bytes",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Member is one name/value pair of an object, in source order.
type Member struct {
	Name  string
	Value *Node
}

// Node is a tagged union over JSON node kinds. Only the accessor matching
// the node's Kind returns meaningful data.
type Node struct {
	kind    Kind
	members []Member
	items   []*Node
	i       int64
	f       float64
	b       bool
	s       string
	raw     []byte
}

// Kind returns the variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Members returns the object's name/value pairs in source order.
func (n *Node) Members() []Member { return n.members }

// Items returns the array's elements in source order.
func (n *Node) Items() []*Node { return n.items }

// Int returns the value of a KindInt node.
func (n *Node) Int() int32 { return int32(n.i) }

// Long returns the value of a KindLong node.
func (n *Node) Long() int64 { return n.i }

// Double returns the value of a KindDouble node.
func (n *Node) Double() float64 { return n.f }

// Bool returns the value of a KindBool node.
func (n *Node) Bool() bool { return n.b }

// Str returns the value of a KindString node.
func (n *Node) Str() string { return n.s }

// Bytes returns the value of a KindBytes node.
func (n *Node) Bytes() []byte { return n.raw }

// Null returns the null node.
func Null() *Node { return &Node{kind: KindNull} }

// Object builds an object node from ordered members.
func Object(members ...Member) *Node { return &Node{kind: KindObject, members: members} }

// Array builds an array node from ordered elements.
func Array(items ...*Node) *Node { return &Node{kind: KindArray, items: items} }

// Int builds a 32-bit integer node.
func Int(v int32) *Node { return &Node{kind: KindInt, i: int64(v)} }

// Long builds a 64-bit integer node.
func Long(v int64) *Node { return &Node{kind: KindLong, i: v} }

// Double builds a floating point node.
func Double(v float64) *Node { return &Node{kind: KindDouble, f: v} }

// Bool builds a boolean node.
func Bool(v bool) *Node { return &Node{kind: KindBool, b: v} }

// String builds a text node.
func String(v string) *Node { return &Node{kind: KindString, s: v} }

// Bytes builds a byte-sequence node.
func Bytes(v []byte) *Node { return &Node{kind: KindBytes, raw: v} }
