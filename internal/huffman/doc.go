// Package huffman implements binary Huffman coding.
//
// It builds a minimum-redundancy prefix code for an alphabet
// given the frequency of each symbol,
// and uses it to encode and decode sequences of those symbols.
//
//	hist := huffman.Count(symbols)
//	root := huffman.Build(hist.Leaves())
//	table := huffman.CodeTable(root)
//
//	bits, err := huffman.Encode(table, symbols)
//	...
//	got, err := huffman.Decode(root, bits)
//
// A code is prefix-free: for any two codewords X and Y,
// X is not a prefix of Y.
// This allows decoding a bit stream without delimiters.
//
// Encoded output is a logical sequence of bits ([Bits]);
// it is not packed into bytes.
package huffman
