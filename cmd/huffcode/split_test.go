package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitModeSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    splitMode
		wantErr string
	}{
		{give: "rune", want: splitRune},
		{give: "byte", want: splitByte},
		{give: "grapheme", want: splitGrapheme},
		{give: "", wantErr: `unknown split mode ""`},
		{give: "Rune", wantErr: `unknown split mode "Rune"`},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var mode splitMode
			err := mode.Set(tt.give)
			if len(tt.wantErr) > 0 {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.give, mode.String())
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	const (
		flag  = "\U0001F1FA\U0001F1F8" // regional indicators U+S
		accnt = "e\u0301"              // e + combining acute
	)

	tests := []struct {
		desc string
		mode splitMode
		give string
		want []string
	}{
		{
			desc: "rune",
			mode: splitRune,
			give: "a\u00f1b",
			want: []string{"a", "\u00f1", "b"},
		},
		{
			desc: "default is rune",
			give: "ab",
			want: []string{"a", "b"},
		},
		{
			desc: "rune/combining",
			mode: splitRune,
			give: accnt,
			want: []string{"e", "\u0301"},
		},
		{
			desc: "byte",
			mode: splitByte,
			give: "a\u00f1",
			want: []string{"a", "\xc3", "\xb1"},
		},
		{
			desc: "grapheme",
			mode: splitGrapheme,
			give: flag + flag + accnt + "x",
			want: []string{flag, flag, accnt, "x"},
		},
		{
			desc: "empty",
			mode: splitGrapheme,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.mode.Split(tt.give))
		})
	}
}

func TestGraphemeRoundTrip(t *testing.T) {
	t.Parallel()

	res := runMain(t, nil, "", "-split", "grapheme", "e\u0301e\u0301e")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "text: e\u0301e\u0301e\n")
	assert.Contains(t, res.Stdout, "stats: {alphabet: 2, bits: 3, fixed: 3, symbols: 3}\n")
}
