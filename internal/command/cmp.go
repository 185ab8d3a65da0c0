// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/flatdiff/differences"
	"github.com/tfctl/flatdiff/internal/config"
	"github.com/tfctl/flatdiff/internal/input"
	"github.com/tfctl/flatdiff/internal/log"
	"github.com/tfctl/flatdiff/internal/meta"
)

// ErrDifferent is returned by cmp when the inputs differ. The report has
// already been written when it is returned.
var ErrDifferent = errors.New("inputs differ")

// cmpCommandAction is the action handler for the "cmp" subcommand. It loads
// both inputs, compares them and writes the report to stdout.
func cmpCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	config.Config.Namespace = "cmp"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("cmp takes exactly two inputs, got %d", len(args))
	}

	values := make([]any, len(args))
	for i, name := range args {
		v, err := input.Load(input.Source{
			Name:   name,
			Format: cmd.String("format"),
			Path:   cmd.String("path"),
		})
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		values[i] = v
	}

	opts := differences.Options{
		Style:   cmd.String("style"),
		Context: cmd.Int("context"),
		LabelA:  label(cmd.String("label-a"), args[0]),
		LabelB:  label(cmd.String("label-b"), args[1]),
		Color:   colorEnabled(cmd, meta.Out()),
		Dumper:  dumper(cmd.String("dump")),
	}
	if t := cmd.String("type"); t != "auto" {
		opts.DataType = t
	}

	w := meta.Out()
	opts.Reporter = differences.ReporterFunc(func(passed bool, _ string, diagnostic string) {
		if !passed {
			fmt.Fprint(w, diagnostic)
		}
	})

	out, err := differences.Compare(values[0], values[1], args[0]+" vs "+args[1], opts)
	if err != nil {
		return err
	}

	if cmd.Bool("summary") {
		fmt.Fprintln(w, summary(out))
	}

	if !out.Passed {
		return ErrDifferent
	}
	return nil
}

func label(flag string, name string) string {
	if flag != "" {
		return flag
	}
	if name == input.Stdin {
		return "stdin"
	}
	return name
}

// colorEnabled honors an explicit --color and otherwise colors only when
// writing to a terminal.
func colorEnabled(cmd *cli.Command, w io.Writer) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func dumper(name string) differences.Dumper {
	if name == "yaml" {
		return differences.YAMLDumper{}
	}
	return differences.SpewDumper{}
}

func summary(out differences.Outcome) string {
	s := out.Stats
	if out.Passed {
		return fmt.Sprintf("identical: %s lines", humanize.Comma(int64(s.LinesA)))
	}
	return fmt.Sprintf("%s vs %s lines: %s changed, %s inserted, %s deleted",
		humanize.Comma(int64(s.LinesA)),
		humanize.Comma(int64(s.LinesB)),
		humanize.Comma(int64(s.Changed)),
		humanize.Comma(int64(s.Inserted)),
		humanize.Comma(int64(s.Deleted)),
	)
}

// cmpCommandBuilder constructs the "cmp" subcommand.
func cmpCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cmp",
		Usage:     "compare two inputs side by side",
		UsageText: "flatdiff cmp [options] GOT EXPECTED",
		Metadata:  map[string]any{"meta": meta},
		Flags:     NewCmpFlags("cmp", config.Path()),
		Action:    cmpCommandAction,
	}
}
