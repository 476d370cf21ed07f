package main

import (
	"flag"
	"fmt"

	"github.com/rivo/uniseg"
)

// splitMode specifies how text is divided into symbols.
type splitMode string

const (
	splitRune     splitMode = "rune"
	splitByte     splitMode = "byte"
	splitGrapheme splitMode = "grapheme"
)

var _ flag.Value = (*splitMode)(nil)

func (m *splitMode) String() string {
	return string(*m)
}

func (m *splitMode) Set(s string) error {
	switch mode := splitMode(s); mode {
	case splitRune, splitByte, splitGrapheme:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown split mode %q: must be rune, byte, or grapheme", s)
	}
}

// Split divides text into symbols.
// Symbols are returned as strings regardless of mode
// so that all modes share a code table type.
func (m splitMode) Split(text string) []string {
	switch m {
	case splitByte:
		syms := make([]string, len(text))
		for i := range len(text) {
			syms[i] = text[i : i+1]
		}
		return syms

	case splitGrapheme:
		syms := make([]string, 0, uniseg.GraphemeClusterCount(text))
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			syms = append(syms, g.Str())
		}
		return syms

	default:
		syms := make([]string, 0, len(text))
		for _, r := range text {
			syms = append(syms, string(r))
		}
		return syms
	}
}
