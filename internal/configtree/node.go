// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package configtree

import (
	"encoding/xml"
	"strings"
)

// Node is a single named element of a configuration tree.
type Node struct {
	name     string
	value    *string
	children []*Node
}

// New returns an empty node. An empty name is a programming error.
func New(name string) *Node {
	if name == "" {
		panic("configtree: node name must not be empty")
	}
	return &Node{name: name}
}

// NewLeaf returns a node carrying a scalar value.
func NewLeaf(name, value string) *Node {
	n := New(name)
	n.SetValue(value)
	return n
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// Scalar returns the node's value. It reports false when no value was set
// or when the node has children, in which case any value is ignored.
func (n *Node) Scalar() (string, bool) {
	if n.value == nil || len(n.children) > 0 {
		return "", false
	}
	return *n.value, true
}

// IsEmpty reports whether the node has neither a value nor children.
func (n *Node) IsEmpty() bool {
	return n.value == nil && len(n.children) == 0
}

// SetValue sets the scalar value.
func (n *Node) SetValue(v string) {
	n.value = &v
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Children returns the direct children in order. The returned slice is a
// copy; the nodes are shared.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child with the given name, in order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// Values returns the scalar values of the direct children with the given
// name. Children without a scalar value are skipped.
func (n *Node) Values(name string) []string {
	var out []string
	for _, c := range n.ChildrenNamed(name) {
		if v, ok := c.Scalar(); ok {
			out = append(out, v)
		}
	}
	return out
}

// ChildValue returns the scalar value of the first child with the given name.
func (n *Node) ChildValue(name string) (string, bool) {
	c := n.FindChild(name)
	if c == nil {
		return "", false
	}
	return c.Scalar()
}

// AddChild appends a new leaf child and returns it.
func (n *Node) AddChild(name, value string) *Node {
	return n.Append(NewLeaf(name, value))
}

// Append adds child as the last child of n and returns it.
func (n *Node) Append(child *Node) *Node {
	if child == nil {
		panic("configtree: cannot append a nil node")
	}
	n.children = append(n.children, child)
	return child
}

// FindOrAddChild returns the first child with the given name, appending an
// empty one when none exists.
func (n *Node) FindOrAddChild(name string) *Node {
	if c := n.FindChild(name); c != nil {
		return c
	}
	return n.Append(New(name))
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	out := &Node{name: n.name}
	if n.value != nil {
		v := *n.value
		out.value = &v
	}
	if len(n.children) > 0 {
		out.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			out.children[i] = c.Clone()
		}
	}
	return out
}

// Equal reports whether two trees have the same names, effective values and
// child order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.name != o.name || len(n.children) != len(o.children) {
		return false
	}
	nv, nok := n.Scalar()
	ov, ook := o.Scalar()
	if nok != ook || nv != ov {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// MarshalXML renders the node as an element named after it, with either its
// children or its scalar value as content.
func (n *Node) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: n.name}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if len(n.children) > 0 {
		for _, c := range n.children {
			if err := c.MarshalXML(e, xml.StartElement{}); err != nil {
				return err
			}
		}
	} else if n.value != nil {
		if err := e.EncodeToken(xml.CharData(*n.value)); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// String renders the tree as indented XML.
func (n *Node) String() string {
	var b strings.Builder
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(n); err != nil {
		return "<!-- " + err.Error() + " -->"
	}
	return b.String()
}
