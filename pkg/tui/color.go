// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var isTerminalFn = term.IsTerminal

// ParseColorMode accepts auto, always and never. An empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Colorizer paints text when enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer decides whether output written to f is colored. In auto
// mode color needs a terminal, an unset NO_COLOR and a TERM other than
// dumb.
func NewColorizer(mode ColorMode, f *os.File) Colorizer {
	switch mode {
	case ColorAlways:
		return Colorizer{Enabled: true}
	case ColorNever:
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	if f == nil || !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap paints text with the given attributes.
func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	p := color.New(attrs...)
	p.EnableColor()
	return p.Sprint(text)
}
