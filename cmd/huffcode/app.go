package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/stringobj"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-runewidth"
)

// app implements the main huffcode application logic:
// build a code from the text, then either encode and round-trip the text,
// or decode the bits given with -decode.
type app struct {
	Log    *log.Logger // defaults to log.Discard
	Clock  clock.Clock
	Stdout io.Writer
}

// Run runs the application on the given text.
func (app *app) Run(cfg *config, text string) error {
	cfg.FillFrom(&_defaultConfig)

	syms := cfg.Split.Split(text)
	if len(syms) == 0 {
		return errors.New("no input text")
	}

	logger := app.Log
	if logger == nil {
		logger = log.Discard
	}
	logger = logger.With("split", cfg.Split.String())

	start := app.Clock.Now()
	hist := huffman.Count(syms)
	root := huffman.Build(hist.Leaves())
	table := huffman.CodeTable(root)
	logger.Debug("built code",
		"alphabet", len(hist),
		log.OmitEmpty(slog.String, "decode", cfg.Decode),
		"took", app.Clock.Since(start))

	if len(cfg.Decode) > 0 {
		return app.decode(logger.WithName("decode"), root, cfg.Decode)
	}

	if cfg.Tree {
		fmt.Fprintf(app.Stdout, "tree: %v\n", root)
	}
	writeCodes(app.Stdout, hist, table)

	start = app.Clock.Now()
	encoded, err := huffman.EncodeConcurrent(table, syms, cfg.Shards)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	logger.Debug("encoded",
		"bits", len(encoded),
		"shards", cfg.Shards,
		"took", app.Clock.Since(start))

	start = app.Clock.Now()
	decoded, err := huffman.Decode(root, encoded)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	logger.Debug("decoded", "symbols", len(decoded), "took", app.Clock.Since(start))

	if !slices.Equal(syms, decoded) {
		return errors.New("decoded text does not match input")
	}

	fmt.Fprintf(app.Stdout, "bits: %v\n", encoded)
	fmt.Fprintf(app.Stdout, "text: %s\n", strings.Join(decoded, ""))
	fmt.Fprintf(app.Stdout, "stats: %v\n", stats{
		Symbols:  len(syms),
		Alphabet: len(hist),
		Bits:     len(encoded),
		Fixed:    len(syms) * max(1, bits.Len(uint(len(hist)-1))),
	})
	return nil
}

func (app *app) decode(logger *log.Logger, root *huffman.Node[string], s string) error {
	encoded, err := huffman.ParseBits(s)
	if err != nil {
		return fmt.Errorf("parse bits: %w", err)
	}

	decoded, err := huffman.Decode(root, encoded)
	if err != nil {
		// Report what we have so far alongside the error.
		if len(decoded) > 0 {
			logger.Error("partial decode", "text", strings.Join(decoded, ""))
		}
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintf(app.Stdout, "text: %s\n", strings.Join(decoded, ""))
	return nil
}

// writeCodes writes the code table, one symbol per line,
// in ascending symbol order with columns aligned.
func writeCodes(w io.Writer, hist huffman.Histogram[string], table huffman.Table[string]) {
	syms := hist.Symbols()
	labels := make([]string, len(syms))
	var width int
	for i, sym := range syms {
		labels[i] = strconv.Quote(sym)
		width = max(width, runewidth.StringWidth(labels[i]))
	}

	fmt.Fprintln(w, "codes:")
	for i, sym := range syms {
		fmt.Fprintf(w, "  %v  %v\n", runewidth.FillRight(labels[i], width), table[sym])
	}
}

type stats struct {
	Symbols  int // symbols in the input
	Alphabet int // distinct symbols
	Bits     int // encoded length

	// Length of the input with a fixed-width code.
	// This is at least one bit per symbol.
	Fixed int
}

func (s stats) String() string {
	var b stringobj.Builder
	b.Put("symbols", s.Symbols)
	b.Put("alphabet", s.Alphabet)
	b.Put("bits", s.Bits)
	b.Put("fixed", s.Fixed)
	return b.String()
}
