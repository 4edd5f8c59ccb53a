// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdparser dispatches command lines to a tree of command handlers.
//
// A Parser is built from an already constructed slice of Handlers. Each
// handler declares its identity (primary name, invocation names and the
// primary name of its parent), the switches it accepts and a usage text.
// The Parser resolves the first token to a handler, extracts switches from
// the remaining tokens into the handler's switch state, checks required
// switches and then runs the handler with the positional arguments left over.
//
// Nothing is printed. Every call returns the lines the caller should show:
//
//	p := cmdparser.New([]cmdparser.Handler{
//	    cmdparser.NewCommand("version", "Prints the version of the application.",
//	        func(c *cmdparser.Command, args []string) error {
//	            c.WriteText("Version: 1.0.0")
//	            if c.IsSwitchSet("long") {
//	                c.WriteText("long output")
//	            }
//	            return nil
//	        },
//	        cmdparser.WithSwitches(cmdparser.SwitchInfo{
//	            Names:      []string{"long"},
//	            ShortNames: []string{"l"},
//	        }),
//	    ),
//	})
//	for _, line := range p.Process(os.Args[1:]) {
//	    fmt.Println(line)
//	}
//
// # Switch Syntax
//
// Long switches are written --name and are matched case-insensitively; long
// names must be declared in lower case. Short switches are written -n and are
// case sensitive, so -e and -E are different switches. A switch declared with
// ArgumentCount N consumes exactly the next N tokens as its values, even when
// those tokens look like switches. There is no --name=value form and short
// switches are never clustered.
//
// The token -? (or any token starting with -?) requests help. At the command
// position it lists the commands of the current scope; after a command it
// renders that command's usage.
//
// # Sub-commands
//
// Handlers name a parent through ParentName. Only handlers whose parent is
// the root scope ("") are reachable from Parser.Process. A parent handler
// reaches its children by calling back into the Dispatcher it receives,
// usually with ProcessSubCommand(PrimaryName(), args). A handler registered
// under the reserved name "default" answers any token its scope does not
// otherwise recognise and receives that token as its first argument.
//
// # Switch State
//
// Switch values are stored on the handler instance and are not cleared
// between invocations. Whoever builds the handler slice decides whether a
// handler is reused or rebuilt for each command line.
package cmdparser
