package main

import "flag"

var _defaultConfig = config{
	Split:  splitRune,
	Shards: 1,
}

type config struct {
	Split   splitMode
	Decode  string
	Tree    bool
	Shards  int
	LogFile string
	Verbose bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(&c.Split, "split", "")
	flag.StringVar(&c.Decode, "decode", "", "")
	flag.BoolVar(&c.Tree, "tree", false, "")
	flag.IntVar(&c.Shards, "shards", 0, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Split) == 0 {
		c.Split = o.Split
	}
	if len(c.Decode) == 0 {
		c.Decode = o.Decode
	}
	if c.Shards <= 0 {
		c.Shards = o.Shards
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Tree = c.Tree || o.Tree
	c.Verbose = c.Verbose || o.Verbose
}
