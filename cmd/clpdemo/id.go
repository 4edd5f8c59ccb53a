// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/yeetrun/cmdparser/pkg/cmdparser"
)

const idCommand = "id"

// newIDCommand groups the UUID commands. It passes its arguments through
// untouched and dispatches them against its children.
func newIDCommand() *cmdparser.Command {
	return cmdparser.NewCommand(idCommand, "id         Generate and inspect UUIDs", func(c *cmdparser.Command, args []string) error {
		if len(args) > 0 {
			c.SubCommand(args)
			return nil
		}
		subs := c.Dispatcher().SubCommands(idCommand)
		slices.Sort(subs)
		c.Printf("Available id commands: %s", strings.Join(subs, ", "))
		return nil
	}, cmdparser.WithRawArgs())
}

func newIDNewCommand() *cmdparser.Command {
	return cmdparser.NewCommand("new", "new        Print random (version 4) UUIDs", runIDNew,
		cmdparser.WithParent(idCommand),
		cmdparser.WithSwitches(
			cmdparser.SwitchInfo{
				Names:         []string{"count"},
				ShortNames:    []string{"n"},
				ArgumentCount: 1,
				UsageText:     "Number of UUIDs to print (default 1)",
			},
			cmdparser.SwitchInfo{
				Names:      []string{"upper"},
				ShortNames: []string{"U"},
				UsageText:  "Print in upper case",
			},
		),
	)
}

func runIDNew(c *cmdparser.Command, _ []string) error {
	n := 1
	if c.IsSwitchSet("count") {
		v, err := strconv.Atoi(c.SwitchValue("count"))
		if err != nil || v < 1 {
			return fmt.Errorf("--count must be a positive number")
		}
		n = v
	}
	for range n {
		id := uuid.NewString()
		if c.IsSwitchSet("upper") {
			id = strings.ToUpper(id)
		}
		c.WriteText(id)
	}
	return nil
}

// newIDParseCommand is also the default of the id scope, so "id <uuid>"
// works without naming the command.
func newIDParseCommand() *cmdparser.Command {
	return cmdparser.NewCommand("parse", "parse      Show the version and variant of UUIDs", func(c *cmdparser.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("parse needs at least one UUID")
		}
		for _, arg := range args {
			u, err := uuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid UUID %q: %w", arg, err)
			}
			c.Printf("%s version=%d variant=%s", u, u.Version(), u.Variant())
		}
		return nil
	},
		cmdparser.WithParent(idCommand),
		cmdparser.WithAliases(cmdparser.DefaultName),
	)
}
