// huffcode builds a Huffman code for a piece of text
// and uses it to encode and decode that text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/paniclog"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-shellwords"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
	Clock:  clock.New(),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

// _optsEnv holds default options for huffcode.
// Options on the command line take precedence.
const _optsEnv = "HUFFCODE_OPTS"

func run(cmd *mainCmd, args []string) error {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")

	if opts := cmd.Getenv(_optsEnv); len(opts) > 0 {
		envArgs, err := shellwords.Parse(opts)
		if err != nil {
			return fmt.Errorf("parse $%v: %w", _optsEnv, err)
		}
		if err := flag.Parse(envArgs); err != nil {
			return fmt.Errorf("parse $%v: %w", _optsEnv, err)
		}
		if rest := flag.Args(); len(rest) > 0 {
			return fmt.Errorf("unexpected arguments in $%v: %q", _optsEnv, rest)
		}
	}

	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffcode version %v\n", _version)
		return nil
	}

	return cmd.Run(&cfg, flag.Args())
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock
}

const _name = "huffcode"

const _usage = `usage: %v [options] [TEXT ...]

Builds a Huffman code from the symbol frequencies of TEXT,
encodes TEXT with it, and decodes the result back.
Reads TEXT from stdin if no arguments are given.

The following flags are available:

	-split MODE
		how TEXT is divided into symbols.
		One of 'rune', 'byte', or 'grapheme'.
			-split grapheme  # user-perceived characters
		Uses 'rune' by default.
	-decode BITS
		decode BITS, a string of 0s and 1s,
		with the code built from TEXT instead of encoding TEXT.
			-decode 10110011101
	-tree
		print the Huffman tree.
	-shards N
		encode with up to N concurrent workers.
		Uses 1 by default.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Default options may be specified in the HUFFCODE_OPTS environment variable.
`

func (cmd *mainCmd) Run(cfg *config, args []string) (err error) {
	cfg.FillFrom(&_defaultConfig)

	stderr := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log %q: %w", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		stderr = f
	}

	defer paniclog.Recover(&err, stderr)

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(stderr, lvl)

	text, err := readText(cmd.Stdin, args)
	if err != nil {
		return err
	}

	return (&app{
		Log:    logger,
		Clock:  cmd.Clock,
		Stdout: cmd.Stdout,
	}).Run(cfg, text)
}

// readText returns the positional arguments joined by spaces,
// or the contents of stdin if there are none.
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin == nil {
		return "", errors.New("no input text")
	}

	bs, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	// Most inputs end with a newline; it isn't part of the text.
	return strings.TrimSuffix(string(bs), "\n"), nil
}
