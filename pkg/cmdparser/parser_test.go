// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdparser

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeHandler implements Handler directly on top of SwitchData and records
// how the Parser drives it.
type fakeHandler struct {
	primary  string
	names    []string
	parent   string
	switches []SwitchInfo
	usage    string
	priority int
	raw      bool

	data SwitchData

	processCalls int
	processArgs  []string
	processWith  Dispatcher
	usageCalls   int
	appended     [][2]string
	out          []string
	err          error
}

var _ Handler = (*fakeHandler)(nil)

func newFake(primary string, switches ...SwitchInfo) *fakeHandler {
	return &fakeHandler{
		primary:  primary,
		names:    []string{primary},
		switches: switches,
		usage:    primary + " usage text",
		priority: DefaultUsagePriority,
	}
}

func (f *fakeHandler) PrimaryName() string { return f.primary }

func (f *fakeHandler) Names() []string { return f.names }

func (f *fakeHandler) ParentName() string { return f.parent }

func (f *fakeHandler) Switches() []SwitchInfo { return f.switches }

func (f *fakeHandler) UsageText() string { return f.usage }

func (f *fakeHandler) UsagePriority() int { return f.priority }

func (f *fakeHandler) ProcessSwitches() bool { return !f.raw }

func (f *fakeHandler) SetSwitch(name string) { f.data.Set(name) }

func (f *fakeHandler) AppendSwitch(name, value string) {
	f.appended = append(f.appended, [2]string{name, value})
	f.data.Append(name, value)
}

func (f *fakeHandler) IsSwitchSet(name string) bool {
	return f.data.IsSet(f.switches, name)
}

func (f *fakeHandler) SwitchValues(name string) ([]string, bool) {
	return f.data.Values(f.switches, name)
}

func (f *fakeHandler) Process(d Dispatcher, args []string) ([]string, error) {
	f.processCalls++
	f.processArgs = slices.Clone(args)
	f.processWith = d
	return f.out, f.err
}

func (f *fakeHandler) Usage() []string {
	f.usageCalls++
	return []string{"Usage for " + f.primary + " :"}
}

func hasLine(lines []string, substr string) bool {
	return slices.ContainsFunc(lines, func(l string) bool { return strings.Contains(l, substr) })
}

func TestProcessNonExistingCommandReturnsUsage(t *testing.T) {
	p := New([]Handler{newFake("version")})
	got := p.Process([]string{"notanyvalidcommand"})
	if !hasLine(got, "Usage") {
		t.Fatalf("Process = %#v, want a Usage line", got)
	}
}

func TestProcessNoArgsReturnsUsage(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"-?"}} {
		p := New([]Handler{newFake("version")})
		got := p.Process(args)
		if !hasLine(got, "Usage") {
			t.Fatalf("Process(%#v) = %#v, want a Usage line", args, got)
		}
	}
}

func TestProcessEmptyRegistryReturnsUsage(t *testing.T) {
	p := New(nil)
	got := p.Process(nil)
	if diff := cmp.Diff([]string{UsageHeader}, got); diff != "" {
		t.Fatalf("Process mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSwitchAtStart(t *testing.T) {
	h := newFake("version")
	p := New([]Handler{h})
	for _, tok := range []string{"-switchatthestart", "--version", "-", "-?x"} {
		got := p.Process([]string{tok, "version"})
		if diff := cmp.Diff([]string{MsgUnexpectedSwitch}, got); diff != "" {
			t.Fatalf("Process(%q) mismatch (-want +got):\n%s", tok, diff)
		}
	}
	if h.processCalls != 0 || h.data.Len() != 0 {
		t.Fatalf("handler was touched: calls=%d keys=%v", h.processCalls, h.data.Keys())
	}
}

func TestProcessCallsHandler(t *testing.T) {
	h := newFake("version")
	h.names = []string{"version", "ver"}
	p := New([]Handler{h})

	p.Process([]string{"ver"})
	if h.processCalls != 1 {
		t.Fatalf("processCalls = %d, want 1", h.processCalls)
	}
	if h.processWith != p {
		t.Fatalf("handler was not given the parser as its dispatcher")
	}
}

func TestProcessPassesPositionalArgs(t *testing.T) {
	h := newFake("copy")
	p := New([]Handler{h})
	p.Process([]string{"copy", "para1", "para2"})
	if diff := cmp.Diff([]string{"para1", "para2"}, h.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessReturnsHandlerOutput(t *testing.T) {
	h := newFake("version")
	h.out = []string{"Version: 1.0.0"}
	p := New([]Handler{h})
	got := p.Process([]string{"version"})
	if diff := cmp.Diff([]string{"Version: 1.0.0"}, got); diff != "" {
		t.Fatalf("Process mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessMissingRequiredSwitch(t *testing.T) {
	h := newFake("deploy",
		SwitchInfo{Names: []string{"target", "t2"}, Required: true, ArgumentCount: 1},
		SwitchInfo{Names: []string{"force"}},
		SwitchInfo{Names: []string{"env"}, ShortNames: []string{"e"}, Required: true},
	)
	p := New([]Handler{h})
	got := p.Process([]string{"deploy", "--force"})
	want := []string{"You need to use the following switches: target,env"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Process mismatch (-want +got):\n%s", diff)
	}
	if h.processCalls != 0 {
		t.Fatalf("handler ran despite missing switches")
	}
}

func TestProcessRequiredSwitchSatisfiedByShortName(t *testing.T) {
	h := newFake("deploy", SwitchInfo{Names: []string{"env"}, ShortNames: []string{"e"}, Required: true})
	p := New([]Handler{h})
	got := p.Process([]string{"deploy", "-e"})
	if len(got) != 0 {
		t.Fatalf("Process = %#v, want no output", got)
	}
	if h.processCalls != 1 {
		t.Fatalf("processCalls = %d, want 1", h.processCalls)
	}
}

func TestProcessUndeclaredSwitch(t *testing.T) {
	for _, tok := range []string{"--badswitch", "-b", "--", "-"} {
		h := newFake("version", SwitchInfo{Names: []string{"long"}, ShortNames: []string{"l"}})
		p := New([]Handler{h})
		got := p.Process([]string{"version", tok})
		if diff := cmp.Diff([]string{MsgInvalidSwitches}, got); diff != "" {
			t.Fatalf("Process(%q) mismatch (-want +got):\n%s", tok, diff)
		}
		if h.processCalls != 0 {
			t.Fatalf("handler ran for %q", tok)
		}
	}
}

func TestProcessUnknownSwitchStaysRecorded(t *testing.T) {
	h := newFake("version")
	p := New([]Handler{h})
	p.Process([]string{"version", "--BadSwitch"})
	if diff := cmp.Diff([]string{"badswitch"}, h.data.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessValidLongSwitch(t *testing.T) {
	h := newFake("version", SwitchInfo{Names: []string{"long"}})
	p := New([]Handler{h})
	got := p.Process([]string{"version", "--LONG"})
	if len(got) != 0 {
		t.Fatalf("Process = %#v, want no output", got)
	}
	if !h.IsSwitchSet("long") {
		t.Fatalf("long switch not recorded")
	}
}

func TestProcessValidShortSwitch(t *testing.T) {
	h := newFake("version", SwitchInfo{ShortNames: []string{"a", "b", "c"}})
	p := New([]Handler{h})
	got := p.Process([]string{"version", "-a"})
	if len(got) != 0 {
		t.Fatalf("Process = %#v, want no output", got)
	}
}

func TestProcessShortSwitchIsCaseSensitive(t *testing.T) {
	h := newFake("version", SwitchInfo{ShortNames: []string{"e"}})
	p := New([]Handler{h})
	got := p.Process([]string{"version", "-E"})
	if diff := cmp.Diff([]string{MsgInvalidSwitches}, got); diff != "" {
		t.Fatalf("Process mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSwitchArguments(t *testing.T) {
	h := newFake("copy", SwitchInfo{Names: []string{"flag"}, ArgumentCount: 2})
	p := New([]Handler{h})
	p.Process([]string{"copy", "--flag", "para1", "para2", "pos"})

	wantAppended := [][2]string{{"flag", "para1"}, {"flag", "para2"}}
	if diff := cmp.Diff(wantAppended, h.appended); diff != "" {
		t.Fatalf("appended mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"pos"}, h.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	vals, ok := h.SwitchValues("flag")
	if !ok {
		t.Fatalf("flag values missing")
	}
	if diff := cmp.Diff([]string{"para1", "para2"}, vals); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSwitchArgumentsTakenVerbatim(t *testing.T) {
	h := newFake("run",
		SwitchInfo{Names: []string{"exec"}, ShortNames: []string{"x"}, ArgumentCount: 2},
		SwitchInfo{Names: []string{"quiet"}},
	)
	p := New([]Handler{h})
	got := p.Process([]string{"run", "-x", "--quiet", "-?", "tail"})
	if len(got) != 0 {
		t.Fatalf("Process = %#v, want no output", got)
	}
	vals, _ := h.SwitchValues("exec")
	if diff := cmp.Diff([]string{"--quiet", "-?"}, vals); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if h.IsSwitchSet("quiet") {
		t.Fatalf("quiet should have been consumed as a value")
	}
	if diff := cmp.Diff([]string{"tail"}, h.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessHelpSwitchOnCommand(t *testing.T) {
	for _, tok := range []string{"-?", "-?foo"} {
		h := newFake("version", SwitchInfo{Names: []string{"long"}, Required: true})
		p := New([]Handler{h})
		got := p.Process([]string{"version", "pos", tok, "--bogus"})
		if h.usageCalls != 1 {
			t.Fatalf("usageCalls = %d, want 1", h.usageCalls)
		}
		if diff := cmp.Diff([]string{"Usage for version :"}, got); diff != "" {
			t.Fatalf("Process mismatch (-want +got):\n%s", diff)
		}
		if h.processCalls != 0 {
			t.Fatalf("handler ran in help mode")
		}
	}
}

func TestProcessRawArgs(t *testing.T) {
	h := newFake("exec")
	h.raw = true
	p := New([]Handler{h})
	got := p.Process([]string{"exec", "--anything", "-x", "-?", "y"})
	if len(got) != 0 {
		t.Fatalf("Process = %#v, want no output", got)
	}
	if diff := cmp.Diff([]string{"--anything", "-x", "-?", "y"}, h.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	if h.data.Len() != 0 {
		t.Fatalf("raw handler recorded switches: %v", h.data.Keys())
	}
}

func TestProcessFirstMatchWins(t *testing.T) {
	first := newFake("a")
	first.names = []string{"go"}
	second := newFake("b")
	second.names = []string{"go"}
	p := New([]Handler{first, second})
	p.Process([]string{"go"})
	if first.processCalls != 1 || second.processCalls != 0 {
		t.Fatalf("calls = %d/%d, want 1/0", first.processCalls, second.processCalls)
	}
}

func TestProcessExactMatchBeatsDefault(t *testing.T) {
	def := newFake("fallback")
	def.names = []string{DefaultName}
	exact := newFake("status")
	p := New([]Handler{def, exact})

	p.Process([]string{"status", "x"})
	if exact.processCalls != 1 || def.processCalls != 0 {
		t.Fatalf("calls exact=%d default=%d, want 1/0", exact.processCalls, def.processCalls)
	}
	if diff := cmp.Diff([]string{"x"}, exact.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessDefaultHandlerGetsAllTokens(t *testing.T) {
	def := newFake("fallback", SwitchInfo{Names: []string{"v"}})
	def.names = []string{DefaultName}
	p := New([]Handler{newFake("status"), def})

	p.Process([]string{"unknown", "--v", "x"})
	if def.processCalls != 1 {
		t.Fatalf("default handler not called")
	}
	if diff := cmp.Diff([]string{"unknown", "x"}, def.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessDefaultHandlerIsScoped(t *testing.T) {
	def := newFake("fallback")
	def.names = []string{DefaultName}
	def.parent = "other"
	p := New([]Handler{def})
	got := p.Process([]string{"unknown"})
	if !hasLine(got, "Usage") || def.processCalls != 0 {
		t.Fatalf("Process = %#v, calls=%d; want usage and no call", got, def.processCalls)
	}
}

func TestProcessSubCommand(t *testing.T) {
	parent := newFake("id")
	child := newFake("new")
	child.parent = "id"
	top := newFake("new") // same name, different scope
	p := New([]Handler{parent, child, top})

	p.ProcessSubCommand("id", []string{"new", "a"})
	if child.processCalls != 1 || top.processCalls != 0 {
		t.Fatalf("calls child=%d top=%d, want 1/0", child.processCalls, top.processCalls)
	}
	if diff := cmp.Diff([]string{"a"}, child.processArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSubCommandScopeIsCaseSensitive(t *testing.T) {
	child := newFake("new")
	child.parent = "id"
	p := New([]Handler{child})
	got := p.ProcessSubCommand("ID", []string{"new"})
	if !hasLine(got, "Usage") || child.processCalls != 0 {
		t.Fatalf("Process = %#v, calls=%d; want usage and no call", got, child.processCalls)
	}
}

func TestProcessPostRunInvalidSwitch(t *testing.T) {
	h := newFake("version")
	h.out = []string{"partial"}
	h.err = &InvalidSwitchError{Switch: "x", Command: "version"}
	p := New([]Handler{h})
	got := p.Process([]string{"version"})
	if diff := cmp.Diff([]string{MsgInvalidSwitches}, got); diff != "" {
		t.Fatalf("Process mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessHandlerError(t *testing.T) {
	h := newFake("version")
	h.out = []string{"partial"}
	h.err = errors.New("boom")
	p := New([]Handler{h})
	got := p.Process([]string{"version"})
	if diff := cmp.Diff([]string{"partial", "boom"}, got); diff != "" {
		t.Fatalf("Process mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessLogsDiscardedCause(t *testing.T) {
	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, format)
	}
	p := New([]Handler{newFake("version")}, WithLogf(logf))
	p.Process([]string{"version", "--nope"})
	if len(logged) != 1 {
		t.Fatalf("logged %d lines, want 1", len(logged))
	}
}

func TestUsageOrderedByPriority(t *testing.T) {
	a := newFake("a")
	a.priority = 200
	b := newFake("b")
	c := newFake("c")
	c.priority = 10
	d := newFake("d")
	child := newFake("e")
	child.parent = "a"
	p := New([]Handler{a, b, c, d, child})

	want := []string{UsageHeader, "c usage text", "b usage text", "d usage text", "a usage text"}
	if diff := cmp.Diff(want, p.Process(nil)); diff != "" {
		t.Fatalf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestSubCommands(t *testing.T) {
	a := newFake("new")
	a.parent = "ID"
	b := newFake("parse")
	b.parent = "id"
	c := newFake("version")
	p := New([]Handler{a, b, c})

	if diff := cmp.Diff([]string{"new", "parse"}, p.SubCommands("id")); diff != "" {
		t.Fatalf("SubCommands(id) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"version"}, p.SubCommands("")); diff != "" {
		t.Fatalf("SubCommands(\"\") mismatch (-want +got):\n%s", diff)
	}
	if got := p.SubCommands("nothing"); len(got) != 0 {
		t.Fatalf("SubCommands(nothing) = %#v, want empty", got)
	}
}

func TestSwitchStatePersistsAcrossDispatches(t *testing.T) {
	h := newFake("version", SwitchInfo{Names: []string{"long"}})
	p := New([]Handler{h})
	p.Process([]string{"version", "--long"})
	p.Process([]string{"version"})
	if !h.IsSwitchSet("long") {
		t.Fatalf("switch state was reset between dispatches")
	}
}
