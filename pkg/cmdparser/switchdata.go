// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

import (
	"slices"
	"strings"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// SwitchData records the switches seen on a command line and their values.
//
// Keys are stored exactly as the parser saw them: long switches lower cased
// and short switches with their original case. Lookups go through the
// command's declarations, so "verbose", "VERBOSE" and "v" all find a value
// stored under "v" when one declaration owns both names.
//
// The zero value is ready to use. A SwitchData is not safe for concurrent use.
type SwitchData struct {
	keys   []string // insertion order
	values map[string][]string
}

// Set marks key as present. It is a no-op if key is already present.
func (d *SwitchData) Set(key string) {
	if _, ok := d.values[key]; ok {
		return
	}
	mak.Set(&d.values, key, []string{})
	d.keys = append(d.keys, key)
}

// Append adds value to key, marking key present first if needed.
func (d *SwitchData) Append(key, value string) {
	d.Set(key)
	d.values[key] = append(d.values[key], value)
}

// Keys returns the stored keys in the order they were first seen.
func (d *SwitchData) Keys() []string {
	return slices.Clone(d.keys)
}

// Len reports the number of stored keys.
func (d *SwitchData) Len() int {
	return len(d.keys)
}

// Reset forgets all stored switches.
func (d *SwitchData) Reset() {
	d.keys = nil
	d.values = nil
}

// lookup resolves name to a declaration and returns the first stored key
// owned by that declaration.
func (d *SwitchData) lookup(decls []SwitchInfo, name string) (string, bool) {
	if name == HelpSwitch {
		_, ok := d.values[HelpSwitch]
		return HelpSwitch, ok
	}
	i := slices.IndexFunc(decls, func(s SwitchInfo) bool { return s.matches(name) })
	if i < 0 {
		return "", false
	}
	decl := decls[i]
	for _, k := range d.keys {
		if decl.matches(k) {
			return k, true
		}
	}
	return "", false
}

// IsSet reports whether the switch called name (by any of its long or short
// names) is present. It is always false for names decls does not declare.
func (d *SwitchData) IsSet(decls []SwitchInfo, name string) bool {
	_, ok := d.lookup(decls, name)
	return ok
}

// Values returns the values stored for the switch called name. The bool is
// false when the switch is undeclared or absent; a present switch without
// values returns an empty slice and true.
func (d *SwitchData) Values(decls []SwitchInfo, name string) ([]string, bool) {
	k, ok := d.lookup(decls, name)
	if !ok {
		return nil, false
	}
	return slices.Clone(d.values[k]), true
}

// Validate checks that every stored key belongs to one of decls, returning
// an *InvalidSwitchError for the first key that does not.
func (d *SwitchData) Validate(command string, decls []SwitchInfo) error {
	long := make(set.Set[string])
	short := make(set.Set[string])
	for _, s := range decls {
		long.AddSlice(s.Names)
		short.AddSlice(s.ShortNames)
	}
	for _, k := range d.keys {
		if k == HelpSwitch || long.Contains(strings.ToLower(k)) || short.Contains(k) {
			continue
		}
		return &InvalidSwitchError{Switch: k, Command: command}
	}
	return nil
}
