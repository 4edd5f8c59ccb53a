// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yeetrun/cmdparser/pkg/cmdparser"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/set"
)

type commandNode struct {
	Name     string        `yaml:"name" json:"name"`
	Commands []commandNode `yaml:"commands,omitempty" json:"commands,omitempty"`
}

func newCommandsCommand(cfg config) *cmdparser.Command {
	return cmdparser.NewCommand("commands", "commands   List all commands as a tree", func(c *cmdparser.Command, _ []string) error {
		format := cmp.Or(c.SwitchValue("format"), cfg.Format, "text")
		tree := commandTree(c.Dispatcher(), "", make(set.Set[string]))
		lines, err := renderTree(tree, format)
		if err != nil {
			return err
		}
		for _, l := range lines {
			c.WriteText(l)
		}
		return nil
	},
		cmdparser.WithUsagePriority(20),
		cmdparser.WithSwitches(cmdparser.SwitchInfo{
			Names:         []string{"format"},
			ShortNames:    []string{"f"},
			ArgumentCount: 1,
			UsageText:     "Output format: text, yaml or json",
		}),
	)
}

// commandTree walks the children of parent. seen guards against handlers
// that name themselves, directly or not, as their own parent.
func commandTree(d cmdparser.Dispatcher, parent string, seen set.Set[string]) []commandNode {
	var nodes []commandNode
	for _, name := range d.SubCommands(parent) {
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		nodes = append(nodes, commandNode{
			Name:     name,
			Commands: commandTree(d, name, seen),
		})
	}
	return nodes
}

func renderTree(nodes []commandNode, format string) ([]string, error) {
	switch format {
	case "text":
		var lines []string
		appendText(&lines, nodes, 0)
		return lines, nil
	case "yaml":
		b, err := yaml.Marshal(nodes)
		if err != nil {
			return nil, err
		}
		return splitLines(string(b)), nil
	case "json":
		b, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return nil, err
		}
		return splitLines(string(b)), nil
	}
	return nil, fmt.Errorf("unknown format %q (want text, yaml or json)", format)
}

func appendText(lines *[]string, nodes []commandNode, depth int) {
	for _, n := range nodes {
		*lines = append(*lines, strings.Repeat("  ", depth)+n.Name)
		appendText(lines, n.Commands, depth+1)
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
