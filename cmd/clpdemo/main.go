// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clpdemo is a small CLI built on pkg/cmdparser.
package main

import (
	"cmp"
	"io"
	"log"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/cmdparser/pkg/cmdparser"
	"github.com/yeetrun/cmdparser/pkg/tui"
)

type globalFlagsParsed struct {
	Config string `flag:"config" help:"Path to the config file"`
	Color  string `flag:"color" help:"Color output (auto|always|never)"`
	Debug  bool   `flag:"debug" help:"Log dispatch decisions to stderr"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("clpdemo: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	flags, rest, err := parseGlobalFlags(args)
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	path := flags.Config
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	mode, err := tui.ParseColorMode(cmp.Or(flags.Color, cfg.Color))
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	var opts []cmdparser.Option
	if flags.Debug {
		opts = append(opts, cmdparser.WithLogf(log.Printf))
	}
	p := cmdparser.New(newHandlers(cfg), opts...)
	lines := p.Process(rest)

	f, _ := out.(*os.File)
	if err := tui.PrintLines(out, tui.NewColorizer(mode, f), lines); err != nil {
		log.Printf("failed to write output: %v", err)
		return 1
	}
	if len(lines) > 0 && tui.IsErrorLine(lines[0]) {
		return 1
	}
	return 0
}

// newHandlers builds a fresh set of handlers. Handlers keep switch state,
// so every command line gets its own.
func newHandlers(cfg config) []cmdparser.Handler {
	return []cmdparser.Handler{
		newVersionCommand(),
		newCommandsCommand(cfg),
		newIDCommand(),
		newIDNewCommand(),
		newIDParseCommand(),
	}
}
