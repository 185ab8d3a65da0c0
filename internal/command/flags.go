// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/flatdiff/internal/input"
)

// Values accepted by the --type, --style and --dump flags.
var (
	typeValues  = []string{"auto", "text", "data"}
	styleValues = []string{"table", "unified", "context"}
	dumpValues  = []string{"spew", "yaml"}
)

// NewCmpFlags builds the cmp flags. When cfgFile is not empty every valued
// flag falls back to ns.<flag> and then <flag> in that file.
func NewCmpFlags(ns string, cfgFile string) []cli.Flag {
	typeFlag := &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "how inputs are numbered: text (from 1), data (from 0) or auto",
		Value:   "auto",
		Sources: cli.NewValueSourceChain(cli.EnvVar("FLATDIFF_TYPE")),
		Validator: func(value string) error {
			return FlagValidators(value, TypeValidator)
		},
	}

	styleFlag := &cli.StringFlag{
		Name:    "style",
		Aliases: []string{"s"},
		Usage:   "report style",
		Value:   "table",
		Sources: cli.NewValueSourceChain(cli.EnvVar("FLATDIFF_STYLE")),
		Validator: func(value string) error {
			return FlagValidators(value, StyleValidator)
		},
	}

	contextFlag := &cli.IntFlag{
		Name:    "context",
		Aliases: []string{"C"},
		Usage:   "unchanged lines shown around each change, 0 picks by input size",
		Value:   0,
		Validator: func(value int) error {
			return FlagValidators(value, ContextValidator)
		},
	}

	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "input format",
		Value:   input.FormatAuto,
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	dumpFlag := &cli.StringFlag{
		Name:  "dump",
		Usage: "serializer for values that are not flat: spew or yaml",
		Value: "spew",
		Validator: func(value string) error {
			return FlagValidators(value, DumpValidator)
		},
	}

	labelA := &cli.StringFlag{
		Name:  "label-a",
		Usage: "heading of the left column, defaults to the first file name",
	}

	labelB := &cli.StringFlag{
		Name:  "label-b",
		Usage: "heading of the right column, defaults to the second file name",
	}

	if cfgFile != "" {
		for _, f := range []*cli.StringFlag{typeFlag, styleFlag, formatFlag, dumpFlag, labelA, labelB} {
			NameSpacedValueChainFromConfigFile(ns, cfgFile, f.Name, &f.Sources)
		}
		NameSpacedValueChainFromConfigFile(ns, cfgFile, contextFlag.Name, &contextFlag.Sources)
	}

	return []cli.Flag{
		typeFlag,
		styleFlag,
		contextFlag,
		formatFlag,
		dumpFlag,
		labelA,
		labelB,
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "dot path selecting part of structured input, e.g. items[0].tags",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "color changed rows, defaults to on for a terminal",
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "print a count of changed lines after the report",
		},
	}
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources for name to the given Sources chain.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
