// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

// DefaultName is the reserved invocation name of the fallback handler of a
// scope.
const DefaultName = "default"

// Dispatcher is the view of the Parser a handler gets while it runs.
type Dispatcher interface {
	// Process dispatches args against the root scope.
	Process(args []string) []string

	// ProcessSubCommand dispatches args against the children of command.
	ProcessSubCommand(command string, args []string) []string

	// SubCommands returns the primary names of the children of parent.
	SubCommands(parent string) []string
}

// Identity places a handler in the command tree.
type Identity interface {
	// PrimaryName is unique among handlers and is what children name as
	// their parent.
	PrimaryName() string

	// Names are the tokens the handler answers to.
	Names() []string

	// ParentName is the primary name of the enclosing command, or "" for
	// top level commands.
	ParentName() string
}

// SwitchDeclarer describes the switches a handler accepts.
type SwitchDeclarer interface {
	Switches() []SwitchInfo

	// ProcessSwitches reports whether the Parser should extract switches.
	// When false every token after the command name is passed through.
	ProcessSwitches() bool
}

// SwitchAccounting stores switches found by the Parser and answers lookups
// from the handler's own logic.
type SwitchAccounting interface {
	SetSwitch(name string)
	AppendSwitch(name, value string)
	IsSwitchSet(name string) bool
	SwitchValues(name string) ([]string, bool)
}

// Processor runs a handler with its positional arguments.
type Processor interface {
	Process(d Dispatcher, args []string) ([]string, error)
}

// UsageRenderer provides help output.
type UsageRenderer interface {
	// UsageText is the handler's line in its scope's command list.
	UsageText() string

	// UsagePriority orders that line, lower first.
	UsagePriority() int

	// Usage renders the handler's full help.
	Usage() []string
}

// Handler is everything the Parser needs from a command.
type Handler interface {
	Identity
	SwitchDeclarer
	SwitchAccounting
	Processor
	UsageRenderer
}
