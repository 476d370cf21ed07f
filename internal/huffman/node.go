package huffman

import (
	"cmp"
	"fmt"
	"strings"
)

// Node is a node in a Huffman tree.
//
// A node is either a leaf, holding a symbol and its weight,
// or a branch with exactly two children
// whose weight is the sum of its children's weights.
// Nodes are immutable once built,
// so a tree may be traversed from multiple goroutines.
type Node[S cmp.Ordered] struct {
	weight int
	symbol S

	// Both nil for leaves, both non-nil for branches.
	left, right *Node[S]
}

// Leaf builds a leaf node for the given symbol and weight.
// weight must not be negative.
func Leaf[S cmp.Ordered](sym S, weight int) *Node[S] {
	if weight < 0 {
		panic(fmt.Sprintf("negative weight %d for symbol %v", weight, sym))
	}
	return &Node[S]{weight: weight, symbol: sym}
}

func merge[S cmp.Ordered](left, right *Node[S]) *Node[S] {
	return &Node[S]{
		weight: left.weight + right.weight,
		left:   left,
		right:  right,
	}
}

// Weight reports the weight of this node.
// For branches, this is the total weight of all leaves beneath it.
func (n *Node[S]) Weight() int { return n.weight }

// IsLeaf reports whether this node is a leaf.
func (n *Node[S]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the symbol held by a leaf.
// ok is false for branches.
func (n *Node[S]) Symbol() (sym S, ok bool) {
	if !n.IsLeaf() {
		return sym, false
	}
	return n.symbol, true
}

// Left returns the child reached with a 0 bit, or nil for leaves.
func (n *Node[S]) Left() *Node[S] { return n.left }

// Right returns the child reached with a 1 bit, or nil for leaves.
func (n *Node[S]) Right() *Node[S] { return n.right }

// child returns the child selected by the given bit.
func (n *Node[S]) child(b Bit) *Node[S] {
	if b == Zero {
		return n.left
	}
	return n.right
}

// String renders the tree as an s-expression.
// Leaves are printed as (sym:weight)
// and branches as (:weight left right).
//
//	(:3 ('a':1) ('b':2))
func (n *Node[S]) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node[S]) format(sb *strings.Builder) {
	sb.WriteByte('(')
	if n.IsLeaf() {
		sb.WriteString(formatSymbol(n.symbol))
	}
	fmt.Fprintf(sb, ":%d", n.weight)
	if !n.IsLeaf() {
		sb.WriteByte(' ')
		n.left.format(sb)
		sb.WriteByte(' ')
		n.right.format(sb)
	}
	sb.WriteByte(')')
}

func formatSymbol(sym any) string {
	switch s := sym.(type) {
	case string, rune:
		return fmt.Sprintf("%q", s)
	default:
		return fmt.Sprint(s)
	}
}
