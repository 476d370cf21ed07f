package huffman

import "cmp"

// Table maps each symbol in a tree to its codeword.
// Tables are built by CodeTable and must not be modified afterwards.
type Table[S cmp.Ordered] map[S]Bits

// CodeTable derives the code table for the tree rooted at root.
//
// The codeword for a symbol is the path from root to its leaf:
// 0 for every left branch and 1 for every right branch.
// Codewords are prefix-free because only leaves receive one.
//
// Special-case: If root is itself a leaf,
// its symbol is assigned the single-bit codeword 0
// so that encoded output carries one bit per symbol.
func CodeTable[S cmp.Ordered](root *Node[S]) Table[S] {
	if root.IsLeaf() {
		return Table[S]{root.symbol: Bits{Zero}}
	}

	table := make(Table[S])

	var walk func(*Node[S], Bits)
	walk = func(n *Node[S], prefix Bits) {
		// If we found a leaf, copy the prefix
		// (descending into the sibling will mutate it).
		if n.IsLeaf() {
			code := make(Bits, len(prefix))
			copy(code, prefix)
			table[n.symbol] = code
			return
		}

		walk(n.left, append(prefix, Zero))
		walk(n.right, append(prefix, One))
	}
	walk(root, nil)

	return table
}

// Cost reports the total number of bits needed to encode
// a message with the given histogram using this table.
// Symbols in the histogram that aren't in the table are ignored.
func (t Table[S]) Cost(hist Histogram[S]) int {
	var total int
	for sym, count := range hist {
		total += count * len(t[sym])
	}
	return total
}
