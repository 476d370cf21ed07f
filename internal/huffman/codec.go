package huffman

import (
	"cmp"
	"sync"

	"go.uber.org/multierr"
)

// Encode encodes symbols with the given code table,
// concatenating their codewords in order.
//
// Returns an *UnknownSymbolError if a symbol isn't in the table.
func Encode[S cmp.Ordered](table Table[S], symbols []S) (Bits, error) {
	return encodeRange(table, symbols, 0)
}

// encodeRange encodes symbols, which start at the given offset in the
// full input. offset is used only for error reporting.
func encodeRange[S cmp.Ordered](table Table[S], symbols []S, offset int) (Bits, error) {
	var bits Bits
	for i, sym := range symbols {
		code, ok := table[sym]
		if !ok {
			return nil, &UnknownSymbolError{
				Symbol: formatSymbol(sym),
				Index:  offset + i,
			}
		}
		bits = append(bits, code...)
	}
	return bits, nil
}

// EncodeConcurrent is a variant of Encode
// that splits symbols into up to the given number of shards
// and encodes them concurrently.
// On success, the output is the same as that of Encode.
//
// Unlike Encode, which stops at the first unknown symbol,
// every shard runs to completion and the errors of all failing shards
// are combined with multierr.
// errors.As will find the error for the earliest shard.
func EncodeConcurrent[S cmp.Ordered](table Table[S], symbols []S, shards int) (Bits, error) {
	if shards > len(symbols) {
		shards = len(symbols)
	}
	if shards <= 1 {
		return Encode(table, symbols)
	}

	size := (len(symbols) + shards - 1) / shards
	outs := make([]Bits, shards)
	errs := make([]error, shards)

	var wg sync.WaitGroup
	for i := range shards {
		start := i * size
		end := min(start+size, len(symbols))
		if start >= end {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			outs[i], errs[i] = encodeRange(table, symbols[start:end], start)
		}()
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	var total int
	for _, out := range outs {
		total += len(out)
	}
	bits := make(Bits, 0, total)
	for _, out := range outs {
		bits = append(bits, out...)
	}
	return bits, nil
}

// Decode decodes bits into symbols by walking the tree rooted at root:
// left on 0, right on 1, emitting a symbol on reaching a leaf
// and starting again from root.
//
// bits must have been encoded with the code table for this tree.
// If bits ends partway through a codeword,
// Decode returns the symbols decoded so far
// along with a *TruncatedInputError.
// Bits with values other than 0 or 1 cause an *InvalidBitError.
//
// Special-case: If root is a leaf, every 0 bit decodes to its symbol.
func Decode[S cmp.Ordered](root *Node[S], bits Bits) ([]S, error) {
	if root.IsLeaf() {
		syms := make([]S, 0, len(bits))
		for i, b := range bits {
			if b != Zero {
				return syms, &InvalidBitError{Offset: i, Bit: b}
			}
			syms = append(syms, root.symbol)
		}
		return syms, nil
	}

	var syms []S
	for i := 0; i < len(bits); {
		start := i
		n := root
		for !n.IsLeaf() {
			if i >= len(bits) {
				return syms, &TruncatedInputError{Offset: start}
			}

			b := bits[i]
			if b != Zero && b != One {
				return syms, &InvalidBitError{Offset: i, Bit: b}
			}
			n = n.child(b)
			i++
		}
		syms = append(syms, n.symbol)
	}
	return syms, nil
}
