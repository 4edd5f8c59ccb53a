// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/cmdparser/pkg/cmdparser"
)

const appVersion = "1.0.0"

func newVersionCommand() *cmdparser.Command {
	return cmdparser.NewCommand("version", "version    Print the version of clpdemo", runVersion,
		cmdparser.WithUsagePriority(10),
		cmdparser.WithSwitches(
			cmdparser.SwitchInfo{
				Names:      []string{"long"},
				ShortNames: []string{"l"},
				UsageText:  "Include the Go version and platform",
			},
			cmdparser.SwitchInfo{
				Names:         []string{"satisfies"},
				ShortNames:    []string{"s"},
				ArgumentCount: 1,
				UsageText:     "Check the version against a semver constraint",
			},
		),
	)
}

func runVersion(c *cmdparser.Command, _ []string) error {
	v := semver.MustParse(appVersion)
	c.Printf("Version: %s", v)
	if c.IsSwitchSet("long") {
		c.Printf("Go: %s", runtime.Version())
		c.Printf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	if !c.IsSwitchSet("satisfies") {
		return nil
	}
	expr := c.SwitchValue("satisfies")
	if expr == "" {
		return fmt.Errorf("--satisfies needs a constraint")
	}
	constraint, err := semver.NewConstraint(expr)
	if err != nil {
		return fmt.Errorf("invalid constraint %q: %w", expr, err)
	}
	c.Printf("%s satisfies %s: %t", v, expr, constraint.Check(v))
	return nil
}
