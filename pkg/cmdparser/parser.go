// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"tailscale.com/types/logger"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogf sets the logger used to trace dispatch. Errors that are folded
// into a generic message for the user are logged here with their cause.
func WithLogf(logf logger.Logf) Option {
	return func(p *Parser) {
		if logf != nil {
			p.logf = logf
		}
	}
}

// Parser resolves command lines against a fixed set of handlers.
//
// Handlers are consulted in slice order; when several handlers in a scope
// answer to the same name the first one wins. The Parser itself holds no
// per-call state but the handlers do, so a Parser must not be used from
// more than one goroutine at a time.
type Parser struct {
	handlers []Handler
	logf     logger.Logf
}

var _ Dispatcher = (*Parser)(nil)

// New returns a Parser over handlers.
func New(handlers []Handler, opts ...Option) *Parser {
	p := &Parser{
		handlers: slices.Clone(handlers),
		logf:     logger.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handlers returns the registered handlers in registration order.
func (p *Parser) Handlers() []Handler {
	return slices.Clone(p.handlers)
}

// Process dispatches args against the top level commands.
func (p *Parser) Process(args []string) []string {
	return p.ProcessSubCommand("", args)
}

// ProcessSubCommand dispatches args against the children of command.
func (p *Parser) ProcessSubCommand(command string, args []string) []string {
	if len(args) == 0 || args[0] == "-"+HelpSwitch {
		return p.Usage(command)
	}
	if strings.HasPrefix(args[0], "-") {
		return []string{MsgUnexpectedSwitch}
	}

	h, fallback := p.resolve(command, args[0])
	if h == nil {
		p.logf("cmdparser: no handler for %q in scope %q", args[0], command)
		return p.Usage(command)
	}
	rest := args[1:]
	if fallback {
		rest = args
	}

	positional, err := extractSwitches(h, rest)
	if err != nil {
		p.logf("cmdparser: %s: %v", h.PrimaryName(), err)
		return []string{MsgInvalidSwitches}
	}

	if h.IsSwitchSet(HelpSwitch) {
		return h.Usage()
	}

	var missing []string
	for _, s := range h.Switches() {
		if s.Required && !h.IsSwitchSet(s.displayName()) {
			missing = append(missing, s.displayName())
		}
	}
	if len(missing) > 0 {
		return []string{MsgMissingSwitches + strings.Join(missing, ",")}
	}

	lines, err := h.Process(p, positional)
	if err != nil {
		p.logf("cmdparser: %s: %v", h.PrimaryName(), err)
		var ise *InvalidSwitchError
		if errors.As(err, &ise) {
			return []string{MsgInvalidSwitches}
		}
		return append(lines, err.Error())
	}
	return lines
}

// resolve picks the handler for name in scope parent. An exact name match
// wins over the scope's default handler regardless of registration order.
func (p *Parser) resolve(parent, name string) (h Handler, fallback bool) {
	var def Handler
	for _, c := range p.handlers {
		if c.ParentName() != parent {
			continue
		}
		names := c.Names()
		if slices.Contains(names, name) {
			return c, false
		}
		if def == nil && slices.Contains(names, DefaultName) {
			def = c
		}
	}
	if def != nil {
		return def, true
	}
	return nil, false
}

// SubCommands returns the primary names of the handlers whose parent is
// parent, compared case-insensitively.
func (p *Parser) SubCommands(parent string) []string {
	var names []string
	for _, h := range p.handlers {
		if strings.EqualFold(h.ParentName(), parent) {
			names = append(names, h.PrimaryName())
		}
	}
	return names
}

// Usage lists the usage text of every child of command, ordered by usage
// priority.
func (p *Parser) Usage(command string) []string {
	var children []Handler
	for _, h := range p.handlers {
		if h.ParentName() == command {
			children = append(children, h)
		}
	}
	slices.SortStableFunc(children, func(a, b Handler) int {
		return cmp.Compare(a.UsagePriority(), b.UsagePriority())
	})
	lines := []string{UsageHeader}
	for _, h := range children {
		lines = append(lines, h.UsageText())
	}
	return lines
}

// extractSwitches records the switches in args on h and returns the
// positional arguments.
//
// A switch with ArgumentCount N takes the next N tokens verbatim. A token
// starting with -? marks the help switch and stops extraction; the
// positional arguments are then discarded. Switch keys are stored before
// they are looked up, so an unknown key is left on h when an error is
// returned.
func extractSwitches(h Handler, args []string) ([]string, error) {
	if !h.ProcessSwitches() {
		return slices.Clone(args), nil
	}

	decls := h.Switches()
	positional := []string{}
	pending := 0
	var key string

	for _, tok := range args {
		if pending > 0 {
			h.AppendSwitch(key, tok)
			pending--
			continue
		}

		var (
			decl SwitchInfo
			ok   bool
		)
		switch {
		case strings.HasPrefix(tok, "-"+HelpSwitch):
			h.SetSwitch(HelpSwitch)
			return []string{}, nil
		case strings.HasPrefix(tok, "--"):
			key = strings.ToLower(tok[2:])
			h.SetSwitch(key)
			decl, ok = findLong(decls, key)
		case strings.HasPrefix(tok, "-"):
			key = tok[1:]
			h.SetSwitch(key)
			decl, ok = findShort(decls, key)
		default:
			positional = append(positional, tok)
			continue
		}
		if !ok {
			return nil, &UnknownSwitchError{Switch: tok, Command: h.PrimaryName()}
		}
		pending = decl.ArgumentCount
	}
	return positional, nil
}
