// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/yeetrun/cmdparser/pkg/cmdparser"
)

// IsErrorLine reports whether line is one of the parser's error responses.
func IsErrorLine(line string) bool {
	switch line {
	case cmdparser.MsgUnexpectedSwitch, cmdparser.MsgInvalidSwitches:
		return true
	}
	return strings.HasPrefix(line, cmdparser.MsgMissingSwitches)
}

func isHeading(line string) bool {
	return line == cmdparser.UsageHeader ||
		(strings.HasPrefix(line, "Usage for ") && strings.HasSuffix(line, " :")) ||
		line == "Supported Switches: "
}

// PrintLines writes lines to w, one per line. Error responses are red and
// usage headings bold when c is enabled.
func PrintLines(w io.Writer, c Colorizer, lines []string) error {
	for _, line := range lines {
		switch {
		case IsErrorLine(line):
			line = c.Wrap(line, color.FgRed)
		case isHeading(line):
			line = c.Wrap(line, color.Bold)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
