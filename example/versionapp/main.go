// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/yeetrun/cmdparser/pkg/cmdparser"
)

func main() {
	version := cmdparser.NewCommand("version", "Prints the version of the application.",
		func(c *cmdparser.Command, _ []string) error {
			c.WriteText("Version: 1.0.0.0")
			if c.IsSwitchSet("long") {
				c.WriteText("wooo")
			}
			return nil
		},
		cmdparser.WithSwitches(cmdparser.SwitchInfo{
			Names:      []string{"long"},
			ShortNames: []string{"l"},
		}),
	)

	p := cmdparser.New([]cmdparser.Handler{version})
	// --notdefined is rejected and replaced by the invalid switches message.
	for _, line := range p.Process([]string{"version", "--long", "--notdefined"}) {
		fmt.Println(line)
	}
}
