// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfctl/flatdiff/internal/command"
	"github.com/tfctl/flatdiff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
		{
			name: "command only",
			args: []string{"flatdiff", "cmp"},
			want: []string{"flatdiff", "cmp"},
		},
		{
			name: "no repeats",
			args: []string{"flatdiff", "cmp", "--style", "unified", "--summary", "a.txt", "b.txt"},
			want: []string{"flatdiff", "cmp", "--style", "unified", "--summary", "a.txt", "b.txt"},
		},
		{
			name: "repeated valued flag keeps the last",
			args: []string{"flatdiff", "cmp", "--style", "unified", "--summary", "--style", "table", "a", "b"},
			want: []string{"flatdiff", "cmp", "--summary", "--style", "table", "a", "b"},
		},
		{
			name: "short and equals forms",
			args: []string{"flatdiff", "cmp", "-t=text", "-f", "json", "-t", "data", "-f=yaml", "a", "b"},
			want: []string{"flatdiff", "cmp", "-t", "data", "-f=yaml", "a", "b"},
		},
		{
			name: "equals then space for the same flag",
			args: []string{"flatdiff", "cmp", "--context=3", "--context", "10", "a", "b"},
			want: []string{"flatdiff", "cmp", "--context", "10", "a", "b"},
		},
		{
			name: "long and short names are distinct keys",
			args: []string{"flatdiff", "cmp", "-C", "1", "--context", "2", "a", "b"},
			want: []string{"flatdiff", "cmp", "-C", "1", "--context", "2", "a", "b"},
		},
		{
			name: "several flags repeated",
			args: []string{"flatdiff", "cmp", "--label-a", "old", "--format", "csv", "--label-a", "new", "--format", "xlsx", "a", "b"},
			want: []string{"flatdiff", "cmp", "--label-a", "new", "--format", "xlsx", "a", "b"},
		},
		{
			name: "triple repeat",
			args: []string{"flatdiff", "cmp", "-s", "table", "-s", "unified", "-s", "context", "a", "b"},
			want: []string{"flatdiff", "cmp", "-s", "context", "a", "b"},
		},
		{
			name: "color does not take the next positional",
			args: []string{"flatdiff", "cmp", "--color", "a.txt", "b.txt", "--color"},
			want: []string{"flatdiff", "cmp", "a.txt", "b.txt", "--color"},
		},
		{
			name: "summary does not take the next positional",
			args: []string{"flatdiff", "cmp", "--summary", "a.txt", "--summary", "b.txt"},
			want: []string{"flatdiff", "cmp", "a.txt", "--summary", "b.txt"},
		},
		{
			name: "stdin dash is positional",
			args: []string{"flatdiff", "cmp", "--format", "json", "-", "b.json", "--format", "yaml"},
			want: []string{"flatdiff", "cmp", "-", "b.json", "--format", "yaml"},
		},
		{
			name: "everything after double dash is positional",
			args: []string{"flatdiff", "cmp", "--style", "table", "--", "--style", "x"},
			want: []string{"flatdiff", "cmp", "--style", "table", "--", "--style", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deduplicateFlags(tt.args))
		})
	}
}

func TestDeduplicateFlagsPositionalBetweenRepeats(t *testing.T) {
	args := []string{"flatdiff", "cmp", "--type", "text", "got.txt", "--type", "data", "expected.txt"}
	assert.Equal(t,
		[]string{"flatdiff", "cmp", "got.txt", "--type", "data", "expected.txt"},
		deduplicateFlags(args))
}

func useConfig(t *testing.T, file string) {
	t.Helper()
	t.Setenv("FLATDIFF_CFG_FILE", file)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestProcessSetOnly(t *testing.T) {
	useConfig(t, "testdata/flatdiff.yaml")

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"flatdiff", "cmp", "a", "b"},
			expected: []string{"flatdiff", "cmp", "a", "b"},
		},
		{
			name:     "multi-word entries split in place",
			args:     []string{"flatdiff", "cmp", "@strict", "a", "b"},
			expected: []string{"flatdiff", "cmp", "--style", "unified", "--context", "1", "a", "b"},
		},
		{
			name:     "set after other args",
			args:     []string{"flatdiff", "cmp", "a", "@quiet", "b"},
			expected: []string{"flatdiff", "cmp", "a", "--summary", "b"},
		},
		{
			name:     "unknown set is removed",
			args:     []string{"flatdiff", "cmp", "@nope", "a", "b"},
			expected: []string{"flatdiff", "cmp", "a", "b"},
		},
		{
			name:     "too short",
			args:     []string{"flatdiff", "cmp"},
			expected: []string{"flatdiff", "cmp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestProcessCommandArgsLastFlagWins(t *testing.T) {
	useConfig(t, "testdata/flatdiff.yaml")

	args := processCommandArgs([]string{"flatdiff", "cmp", "@strict", "--style", "table", "a", "b"})
	assert.Equal(t, []string{"flatdiff", "cmp", "--context", "1", "--style", "table", "a", "b"}, args)

	args = processCommandArgs([]string{"flatdiff", "completion", "bash"})
	assert.Equal(t, []string{"flatdiff", "completion", "bash"}, args)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(command.ErrDifferent))
	assert.Equal(t, 1, exitCode(fmt.Errorf("wrapped: %w", command.ErrDifferent)))
	assert.Equal(t, 2, exitCode(errors.New("boom")))
}

func TestRun(t *testing.T) {
	useConfig(t, filepath.Join(t.TempDir(), "absent.yaml"))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"equal", []string{"flatdiff", "cmp", "testdata/a.txt", "testdata/a.txt"}, 0},
		{"different", []string{"flatdiff", "cmp", "testdata/a.txt", "testdata/b.txt"}, 1},
		{"missing input", []string{"flatdiff", "cmp", "testdata/a.txt", "testdata/none.txt"}, 2},
		{"version", []string{"flatdiff", "--version"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
