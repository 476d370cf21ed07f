package huffman

import (
	"cmp"
	"slices"
)

// Histogram maps symbols to the number of times they occur.
type Histogram[S cmp.Ordered] map[S]int

// Count builds a histogram of the given symbols.
func Count[S cmp.Ordered](symbols []S) Histogram[S] {
	hist := make(Histogram[S])
	for _, sym := range symbols {
		hist[sym]++
	}
	return hist
}

// Total reports the total number of occurrences of all symbols.
func (h Histogram[S]) Total() int {
	var total int
	for _, n := range h {
		total += n
	}
	return total
}

// Symbols returns the symbols in the histogram in ascending order.
func (h Histogram[S]) Symbols() []S {
	syms := make([]S, 0, len(h))
	for sym := range h {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	return syms
}

// Leaves builds a leaf for each symbol in the histogram,
// in ascending symbol order.
func (h Histogram[S]) Leaves() []*Node[S] {
	syms := h.Symbols()
	leaves := make([]*Node[S], len(syms))
	for i, sym := range syms {
		leaves[i] = Leaf(sym, h[sym])
	}
	return leaves
}
