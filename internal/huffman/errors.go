package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet is the panic value used by Build
// when it's asked to build a tree with no leaves.
var ErrEmptyAlphabet = errors.New("huffman: cannot build a tree with no symbols")

// UnknownSymbolError is returned by Encode
// when the input contains a symbol that isn't in the code table.
type UnknownSymbolError struct {
	// Symbol that wasn't found, formatted with %v.
	Symbol string

	// Position of the symbol in the input.
	Index int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: unknown symbol %s at index %d", e.Symbol, e.Index)
}

// TruncatedInputError is returned by Decode
// when the input ends partway through a codeword.
type TruncatedInputError struct {
	// Offset of the first bit of the incomplete codeword.
	Offset int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("huffman: input ends mid-codeword starting at bit %d", e.Offset)
}

// InvalidBitError is returned by Decode
// for bits that don't lead anywhere in the tree.
// This is a bit with a value other than 0 or 1,
// or a 1 bit for a tree with only one symbol.
type InvalidBitError struct {
	Offset int
	Bit    Bit
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("huffman: invalid bit %d at offset %d", e.Bit, e.Offset)
}
