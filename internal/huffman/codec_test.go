package huffman

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRoundTripText(t *testing.T) {
	t.Parallel()

	const text = "hello, wired world"
	msg := []rune(text)

	hist := Count(msg)
	root := Build(hist.Leaves())
	table := CodeTable(root)

	bits, err := Encode(table, msg)
	require.NoError(t, err)

	// h , i: 1; l: 3; everything else: 2.
	// Merging gives 2+3+4+4+4+6+8+10+18.
	assert.Len(t, bits, 59)
	assert.Equal(t, 59, table.Cost(hist))

	got, err := Decode(root, bits)
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
}

func TestSingleSymbolAlphabet(t *testing.T) {
	t.Parallel()

	msg := []rune("aaaaa")
	hist := Count(msg)
	require.Equal(t, Histogram[rune]{'a': 5}, hist)

	root := Build(hist.Leaves())
	table := CodeTable(root)
	assert.Equal(t, Table[rune]{'a': {Zero}}, table)

	bits, err := Encode(table, msg)
	require.NoError(t, err)
	assert.Equal(t, "00000", bits.String())

	got, err := Decode(root, bits)
	require.NoError(t, err)
	assert.Equal(t, "aaaaa", string(got))

	t.Run("one bit", func(t *testing.T) {
		t.Parallel()

		got, err := Decode(root, Bits{Zero, Zero, One})
		var bitErr *InvalidBitError
		require.ErrorAs(t, err, &bitErr)
		assert.Equal(t, 2, bitErr.Offset)
		assert.Equal(t, One, bitErr.Bit)
		assert.Equal(t, "aa", string(got))
	})
}

func TestEncodeUnknownSymbol(t *testing.T) {
	t.Parallel()

	table := CodeTable(Build(Count([]rune("abc")).Leaves()))

	bits, err := Encode(table, []rune("abzc"))
	assert.Nil(t, bits)

	var symErr *UnknownSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "'z'", symErr.Symbol)
	assert.Equal(t, 2, symErr.Index)
	assert.EqualError(t, err, "huffman: unknown symbol 'z' at index 2")
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	table := CodeTable(Build(Count([]rune("abc")).Leaves()))
	bits, err := Encode(table, nil)
	require.NoError(t, err)
	assert.Empty(t, bits)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	// c: 0, a: 10, b: 11
	root := Build(Histogram[rune]{'a': 1, 'b': 1, 'c': 2}.Leaves())

	tests := []struct {
		desc string
		give string
		want string

		wantTruncated int // offset, if >= 0
	}{
		{
			desc:          "empty",
			want:          "",
			wantTruncated: -1,
		},
		{
			desc:          "complete",
			give:          "0 10 11 0",
			want:          "cabc",
			wantTruncated: -1,
		},
		{
			desc:          "truncated",
			give:          "0 1",
			want:          "c",
			wantTruncated: 1,
		},
		{
			desc:          "truncated after many",
			give:          "10 11 0 0 1",
			want:          "abcc",
			wantTruncated: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			bits, err := ParseBits(tt.give)
			require.NoError(t, err)

			got, err := Decode(root, bits)
			assert.Equal(t, tt.want, string(got))

			if tt.wantTruncated < 0 {
				assert.NoError(t, err)
				return
			}

			var truncErr *TruncatedInputError
			require.ErrorAs(t, err, &truncErr)
			assert.Equal(t, tt.wantTruncated, truncErr.Offset)
		})
	}

	t.Run("invalid bit", func(t *testing.T) {
		t.Parallel()

		got, err := Decode(root, Bits{Zero, One, 7})
		assert.Equal(t, "c", string(got))

		var bitErr *InvalidBitError
		require.ErrorAs(t, err, &bitErr)
		assert.Equal(t, &InvalidBitError{Offset: 2, Bit: 7}, bitErr)
	})
}

func TestEncodeConcurrent(t *testing.T) {
	t.Parallel()

	msg := []rune("the quick brown fox jumps over the lazy dog")
	table := CodeTable(Build(Count(msg).Leaves()))

	want, err := Encode(table, msg)
	require.NoError(t, err)

	for _, shards := range []int{0, 1, 2, 3, 7, len(msg), 2 * len(msg)} {
		got, err := EncodeConcurrent(table, msg, shards)
		require.NoError(t, err, "shards=%d", shards)
		assert.Equal(t, want, got, "shards=%d", shards)
	}
}

func TestEncodeConcurrentUnknownSymbols(t *testing.T) {
	t.Parallel()

	table := CodeTable(Build(Count([]rune("abc")).Leaves()))

	// Unknown symbols in the first and last shards.
	bits, err := EncodeConcurrent(table, []rune("xabcabcaby"), 3)
	assert.Nil(t, bits)
	require.Error(t, err)

	var symErr *UnknownSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, "'x'", symErr.Symbol)
	assert.Equal(t, 0, symErr.Index)

	assert.Contains(t, err.Error(), "unknown symbol 'y' at index 9")

	// Encode stops at the first unknown symbol.
	_, err = Encode(table, []rune("xabcabcaby"))
	require.Error(t, err)
	assert.Equal(t, "huffman: unknown symbol 'x' at index 0", err.Error())
}

func TestSharedTree(t *testing.T) {
	t.Parallel()

	const text = "hello, wired world"
	msg := []rune(text)
	root := Build(Count(msg).Leaves())

	want, err := Encode(CodeTable(root), msg)
	require.NoError(t, err)

	// Trees are read-only after Build,
	// so table derivation and decoding may share one root.
	const workers = 8
	var wg sync.WaitGroup
	tables := make([]Table[rune], workers)
	texts := make([]string, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tables[i] = CodeTable(root)
			var got []rune
			got, errs[i] = Decode(root, want)
			texts[i] = string(got)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i], "worker %d", i)
		assert.Equal(t, text, texts[i], "worker %d", i)
		assert.Equal(t, CodeTable(root), tables[i], "worker %d", i)
	}
}

func TestRoundTrip_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hist := histogramGen().Draw(t, "hist")
		msg := rapid.SliceOfN(rapid.SampledFrom(hist.Symbols()), 1, 256).
			Draw(t, "msg")

		root := Build(hist.Leaves())
		table := CodeTable(root)

		bits, err := Encode(table, msg)
		require.NoError(t, err)

		shards := rapid.IntRange(1, 8).Draw(t, "shards")
		concBits, err := EncodeConcurrent(table, msg, shards)
		require.NoError(t, err)
		assert.Equal(t, bits, concBits)

		got, err := Decode(root, bits)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	})
}

func TestDecodeTruncated_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hist := histogramGen().Draw(t, "hist")
		if len(hist) < 2 {
			t.Skip("single-symbol codes can't be truncated")
		}

		msg := rapid.SliceOfN(rapid.SampledFrom(hist.Symbols()), 1, 64).
			Draw(t, "msg")
		root := Build(hist.Leaves())
		table := CodeTable(root)

		bits, err := Encode(table, msg)
		require.NoError(t, err)

		// Chop off part of the last codeword.
		last := table[msg[len(msg)-1]]
		cut := rapid.IntRange(1, len(last)).Draw(t, "cut")
		if cut == len(last) {
			cut = len(last) - 1
		}
		if cut == 0 {
			t.Skip("last codeword is a single bit")
		}

		got, err := Decode(root, bits[:len(bits)-cut])
		var truncErr *TruncatedInputError
		require.ErrorAs(t, err, &truncErr)
		assert.Equal(t, len(bits)-len(last), truncErr.Offset)
		assert.Equal(t, string(msg[:len(msg)-1]), string(got))
	})
}
