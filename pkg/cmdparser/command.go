// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

import (
	"fmt"
	"slices"
)

// RunFunc is the command specific part of a Command. It reads switches
// through c, writes output with c.WriteText and may dispatch sub-commands
// through c.Dispatcher.
type RunFunc func(c *Command, args []string) error

// CommandOption configures a Command.
type CommandOption func(*Command)

// WithAliases adds invocation names next to the primary name. Adding
// DefaultName makes the command the fallback of its scope.
func WithAliases(names ...string) CommandOption {
	return func(c *Command) {
		c.names = append(c.names, names...)
	}
}

// WithParent places the command under the command with the given primary
// name.
func WithParent(parent string) CommandOption {
	return func(c *Command) {
		c.parent = parent
	}
}

// WithSwitches declares the switches the command accepts.
func WithSwitches(switches ...SwitchInfo) CommandOption {
	return func(c *Command) {
		c.switches = append(c.switches, switches...)
	}
}

// WithUsagePriority sets the position of the command in its scope's usage.
func WithUsagePriority(priority int) CommandOption {
	return func(c *Command) {
		c.priority = priority
	}
}

// WithRawArgs disables switch extraction; the command receives every token
// after its name unchanged.
func WithRawArgs() CommandOption {
	return func(c *Command) {
		c.raw = true
	}
}

// Command is a Handler assembled from a name, a usage text, a RunFunc and
// options. Its switch state lives in a SwitchData that is kept for the
// lifetime of the Command.
type Command struct {
	name     string
	names    []string
	parent   string
	switches []SwitchInfo
	usage    string
	priority int
	raw      bool
	run      RunFunc

	data       SwitchData
	dispatcher Dispatcher
	out        []string
}

var _ Handler = (*Command)(nil)

// NewCommand returns a Command answering to name.
func NewCommand(name, usageText string, run RunFunc, opts ...CommandOption) *Command {
	c := &Command{
		name:     name,
		names:    []string{name},
		usage:    usageText,
		priority: DefaultUsagePriority,
		run:      run,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Command) PrimaryName() string { return c.name }

func (c *Command) Names() []string { return slices.Clone(c.names) }

func (c *Command) ParentName() string { return c.parent }

func (c *Command) Switches() []SwitchInfo { return slices.Clone(c.switches) }

func (c *Command) UsageText() string { return c.usage }

func (c *Command) UsagePriority() int { return c.priority }

func (c *Command) ProcessSwitches() bool { return !c.raw }

func (c *Command) SetSwitch(name string) { c.data.Set(name) }

func (c *Command) IsSwitchSet(name string) bool {
	return c.data.IsSet(c.switches, name)
}

func (c *Command) AppendSwitch(name, value string) {
	c.data.Append(name, value)
}

func (c *Command) SwitchValues(name string) ([]string, bool) {
	return c.data.Values(c.switches, name)
}

// SwitchValue returns the first value of the switch called name, or "".
func (c *Command) SwitchValue(name string) string {
	vals, _ := c.SwitchValues(name)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// WriteText appends a line to the command's output.
func (c *Command) WriteText(line string) {
	c.out = append(c.out, line)
}

// Printf appends a formatted line to the command's output.
func (c *Command) Printf(format string, args ...any) {
	c.WriteText(fmt.Sprintf(format, args...))
}

// Dispatcher returns the Dispatcher of the current or most recent Process
// call.
func (c *Command) Dispatcher() Dispatcher {
	return c.dispatcher
}

// SubCommand dispatches args against the children of c and copies their
// output into c's output.
func (c *Command) SubCommand(args []string) {
	if c.dispatcher == nil {
		return
	}
	for _, line := range c.dispatcher.ProcessSubCommand(c.name, args) {
		c.WriteText(line)
	}
}

// Process runs the command. The switch state is validated only after the
// RunFunc returns; an undeclared switch yields an *InvalidSwitchError
// together with whatever the RunFunc wrote.
func (c *Command) Process(d Dispatcher, args []string) ([]string, error) {
	c.dispatcher = d
	c.out = nil
	if c.run != nil {
		if err := c.run(c, args); err != nil {
			return c.out, err
		}
	}
	if err := c.data.Validate(c.name, c.switches); err != nil {
		return c.out, err
	}
	return c.out, nil
}

// Usage renders the command's help and its switches.
func (c *Command) Usage() []string {
	lines := []string{
		fmt.Sprintf("Usage for %s :", c.name),
		c.usage,
		"",
		"Supported Switches: ",
	}
	return append(lines, SwitchUsage(c.switches)...)
}
