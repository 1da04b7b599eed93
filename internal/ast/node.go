// Package ast defines the generic tree produced by parsing list-text.
// A Node is either an atom (symbol, string, integer, float) or a list of
// nodes. The first child of a list conventionally names what the list
// represents, but the tree itself is schema-agnostic: domain consumers map
// tags to their own record types.
package ast

import (
	"math"

	"sexpfmt/internal/source"
)

// Kind discriminates the Node union.
type Kind uint8

const (
	// Invalid indicates a zero-value node.
	Invalid Kind = iota
	// List is an ordered sequence of child nodes.
	List
	// Symbol is a bare identifier-like atom.
	Symbol
	// String is a double-quoted string atom (stored unescaped).
	String
	// Int is an integral numeric atom.
	Int
	// Float is a numeric atom with a non-integral value.
	Float
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case List:
		return "List"
	case Symbol:
		return "Symbol"
	case String:
		return "String"
	case Int:
		return "Int"
	case Float:
		return "Float"
	}
	return "Unknown"
}

// Node is a fat union: exactly the field selected by Kind is meaningful.
// Nodes are immutable products of one parse call.
type Node struct {
	Kind  Kind
	Span  source.Span
	Sym   string
	Str   string
	Int   int64
	Float float64
	Items []Node
}

// NewList builds a list node from its children.
func NewList(items ...Node) Node {
	return Node{Kind: List, Items: items}
}

// NewSymbol builds a bare symbol atom.
func NewSymbol(s string) Node {
	return Node{Kind: Symbol, Sym: s}
}

// NewString builds a string atom from already-unescaped content.
func NewString(s string) Node {
	return Node{Kind: String, Str: s}
}

// NewInt builds an integer atom.
func NewInt(i int64) Node {
	return Node{Kind: Int, Int: i}
}

// NewNumber applies the numeric coercion invariant: a value with an integral
// magnitude becomes Int (1.0 parses to the integer 1), anything else Float.
func NewNumber(f float64) Node {
	if f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f <= math.MaxInt64 {
		return Node{Kind: Int, Int: int64(f)}
	}
	return Node{Kind: Float, Float: f}
}

// IsList reports whether the node is a list.
func (n Node) IsList() bool { return n.Kind == List }

// IsAtom reports whether the node is a non-list leaf.
func (n Node) IsAtom() bool {
	switch n.Kind {
	case Symbol, String, Int, Float:
		return true
	default:
		return false
	}
}

// Head returns the leading symbol of a list, the conventional record tag.
func (n Node) Head() (string, bool) {
	if n.Kind != List || len(n.Items) == 0 || n.Items[0].Kind != Symbol {
		return "", false
	}
	return n.Items[0].Sym, true
}

// Get returns the first child list whose head symbol equals tag.
func (n Node) Get(tag string) (Node, bool) {
	if n.Kind != List {
		return Node{}, false
	}
	for _, it := range n.Items {
		if h, ok := it.Head(); ok && h == tag {
			return it, true
		}
	}
	return Node{}, false
}

// Equal reports structural equality, ignoring spans.
func (n Node) Equal(other Node) bool {
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case List:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case Symbol:
		return n.Sym == other.Sym
	case String:
		return n.Str == other.Str
	case Int:
		return n.Int == other.Int
	case Float:
		return n.Float == other.Float
	default:
		return true
	}
}
