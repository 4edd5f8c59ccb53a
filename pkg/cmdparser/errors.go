// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

import "fmt"

// Lines returned by the Parser instead of running a command.
const (
	UsageHeader         = "Usage: "
	MsgUnexpectedSwitch = "Unexpected - when command was expected. Please start with command."
	MsgInvalidSwitches  = "Invalid switches passed in. Please use -? to list available switches."
	MsgMissingSwitches  = "You need to use the following switches: "
)

// UnknownSwitchError is returned while extracting switches when a token
// names a switch the command does not declare.
type UnknownSwitchError struct {
	Switch  string // The token as typed, including its dashes.
	Command string
}

func (e *UnknownSwitchError) Error() string {
	return fmt.Sprintf("unknown switch %s for command %s", e.Switch, e.Command)
}

// InvalidSwitchError is returned by Command.Process when its switch state
// holds a key the command does not declare. The check runs after the
// command's RunFunc, so anything the RunFunc did has already happened.
type InvalidSwitchError struct {
	Switch  string // The key as stored, without dashes.
	Command string
}

func (e *InvalidSwitchError) Error() string {
	return fmt.Sprintf("the switch %s is not a valid switch for this command", e.Switch)
}
