// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultUsagePriority is used for switches and commands that leave their
// usage priority at zero.
const DefaultUsagePriority = 100

// HelpSwitch is the key recorded when -? is seen after a command name.
// Every handler implicitly accepts it.
const HelpSwitch = "?"

// SwitchInfo declares a single switch accepted by a command.
type SwitchInfo struct {
	// Names are the long forms (--name). They must be lower case.
	// The first entry is used when reporting a missing required switch.
	Names []string

	// ShortNames are the short forms (-n). They are case sensitive.
	ShortNames []string

	// Required switches must be present or the command is not run.
	Required bool

	// ArgumentCount is the number of tokens following the switch that are
	// consumed as its values.
	ArgumentCount int

	// UsageText is shown next to the switch names in the command usage.
	UsageText string

	// UsagePriority orders the switch in the command usage, lower first.
	// Zero means DefaultUsagePriority; use a negative value to sort ahead
	// of switches that keep the default.
	UsagePriority int
}

func (s SwitchInfo) priority() int {
	if s.UsagePriority == 0 {
		return DefaultUsagePriority
	}
	return s.UsagePriority
}

func (s SwitchInfo) matchesLong(key string) bool {
	return slices.Contains(s.Names, strings.ToLower(key))
}

func (s SwitchInfo) matchesShort(key string) bool {
	return slices.Contains(s.ShortNames, key)
}

func (s SwitchInfo) matches(key string) bool {
	return s.matchesLong(key) || s.matchesShort(key)
}

// displayName is the name used to report the switch as missing.
func (s SwitchInfo) displayName() string {
	if len(s.Names) > 0 {
		return s.Names[0]
	}
	if len(s.ShortNames) > 0 {
		return s.ShortNames[0]
	}
	return ""
}

func (s SwitchInfo) usageLine() string {
	names := strings.Join(s.Names, ",") + "," + strings.Join(s.ShortNames, ",")
	return "\t" + names + "\t - " + s.UsageText
}

// findLong returns the declaration with the given long name.
// key must already be lower case.
func findLong(decls []SwitchInfo, key string) (SwitchInfo, bool) {
	for _, s := range decls {
		if slices.Contains(s.Names, key) {
			return s, true
		}
	}
	return SwitchInfo{}, false
}

func findShort(decls []SwitchInfo, key string) (SwitchInfo, bool) {
	for _, s := range decls {
		if s.matchesShort(key) {
			return s, true
		}
	}
	return SwitchInfo{}, false
}

// SwitchUsage renders one line per switch, ordered by usage priority.
// Switches with the same priority keep their declaration order.
func SwitchUsage(decls []SwitchInfo) []string {
	sorted := slices.Clone(decls)
	slices.SortStableFunc(sorted, func(a, b SwitchInfo) int {
		return cmp.Compare(a.priority(), b.priority())
	})
	lines := make([]string, 0, len(sorted))
	for _, s := range sorted {
		lines = append(lines, s.usageLine())
	}
	return lines
}
