// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/flatdiff/internal/command"
	"github.com/tfctl/flatdiff/internal/config"
	"github.com/tfctl/flatdiff/internal/log"
	"github.com/tfctl/flatdiff/internal/version"
)

// Exit codes.
const (
	exitSame      = 0
	exitDifferent = 1
	exitError     = 2
)

var ctx = context.Background()

// boolFlags never take a value, so the argument after them is left alone by
// deduplicateFlags.
var boolFlags = map[string]bool{
	"c":       true,
	"color":   true,
	"h":       true,
	"help":    true,
	"summary": true,
	"v":       true,
	"version": true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands @set arguments and then drops repeated flags so
// that the last one given wins.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Debugf("args after dedup: args=%v", args)
	return args
}

// exitCode maps the error returned by the app to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSame
	case errors.Is(err, command.ErrDifferent):
		return exitDifferent
	default:
		return exitError
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return exitError
	}

	err = app.Run(ctx, args)
	if err != nil && !errors.Is(err, command.ErrDifferent) {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
	}

	return exitCode(err)
}

func realMain() int {
	log.InitLogger()
	return run(os.Args)
}

func run(args []string) int {
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return exitSame
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}

// flagGroup is a flag with its value, or a single positional argument.
type flagGroup struct {
	key    string
	tokens []string
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// command, along with its value. Positional arguments and the relative order
// of everything kept are preserved.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	var groups []flagGroup
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]

		if tok == "--" {
			for _, p := range rest[i:] {
				groups = append(groups, flagGroup{tokens: []string{p}})
			}
			break
		}

		if !isFlag(tok) {
			groups = append(groups, flagGroup{tokens: []string{tok}})
			continue
		}

		key, _, hasValue := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		g := flagGroup{key: key, tokens: []string{tok}}
		if !hasValue && !boolFlags[key] && i+1 < len(rest) && !isFlag(rest[i+1]) && rest[i+1] != "--" {
			i++
			g.tokens = append(g.tokens, rest[i])
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.key == "" || last[g.key] == i {
			out = append(out, g.tokens...)
		}
	}
	return out
}

// isFlag reports whether s looks like a flag. A lone "-" names stdin.
func isFlag(s string) bool {
	return len(s) > 1 && strings.HasPrefix(s, "-")
}
