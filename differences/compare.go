// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differences

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/tfctl/flatdiff/internal/differ"
	"github.com/tfctl/flatdiff/internal/escape"
	"github.com/tfctl/flatdiff/internal/flatten"
	"github.com/tfctl/flatdiff/internal/log"
	"github.com/tfctl/flatdiff/internal/output"
	"github.com/tfctl/flatdiff/internal/shape"
)

// Data types. Text numbers lines from 1, data numbers elements from 0.
const (
	DataText = "text"
	DataData = "data"
)

// Report styles.
const (
	StyleTable   = "table"
	StyleUnified = "unified"
	StyleContext = "context"
)

// Dumper serializes values that are not flat into lines.
type Dumper = flatten.Dumper

// SpewDumper and YAMLDumper are the available Dumpers. SpewDumper is the
// default.
type (
	SpewDumper = flatten.SpewDumper
	YAMLDumper = flatten.YAMLDumper
)

// Options tunes a comparison. DataType is the main knob; every other field is
// optional and its zero value selects the computed default. The zero value
// is ready to use.
type Options struct {
	// DataType is DataText or DataData. Empty means text when neither value
	// is a collection and data otherwise.
	DataType string `validate:"omitempty,oneof=text data"`
	// Style is StyleTable (the default), StyleUnified or StyleContext.
	Style string `validate:"omitempty,oneof=table unified context"`
	// Context overrides the number of unchanged lines shown around changes.
	// Zero picks 25 for small inputs and 3 once either side exceeds 25 lines.
	Context int `validate:"gte=0"`
	// LabelA and LabelB head the two sides. Defaults are "Got" and "Expected".
	LabelA string
	LabelB string
	// Color styles changed rows for a terminal.
	Color bool
	// Dumper handles values that are not flat. Nil means SpewDumper.
	Dumper Dumper `validate:"-"`
	// Reporter receives the outcome. Nil means the default reporter.
	Reporter Reporter `validate:"-"`
}

// Outcome is the result of a comparison. Report is empty when Passed.
type Outcome struct {
	Passed bool
	Report string
	Stats  Stats
}

// Stats counts the lines on each side and the rows of each kind of change
// within the reported hunks.
type Stats struct {
	LinesA   int
	LinesB   int
	Changed  int
	Inserted int
	Deleted  int
}

var validate = validator.New()

// Compare compares got with expected, hands the outcome to the reporter once
// and returns it. An error means nothing was reported: the options were
// invalid or the Dumper failed.
func Compare(got, expected any, name string, opts Options) (Outcome, error) {
	out, err := Evaluate(got, expected, opts)
	if err != nil {
		return Outcome{}, err
	}

	reporterFor(opts).Report(out.Passed, name, out.Report)
	return out, nil
}

// CompareText is Compare with line numbers starting at 1.
func CompareText(got, expected any, name string, opts Options) (Outcome, error) {
	opts.DataType = DataText
	return Compare(got, expected, name, opts)
}

// CompareData is Compare with element numbers starting at 0.
func CompareData(got, expected any, name string, opts Options) (Outcome, error) {
	opts.DataType = DataData
	return Compare(got, expected, name, opts)
}

// Assert compares got with expected under the name of t and fails t with the
// rendered report when they differ. Only the first opts is used.
func Assert(t testing.TB, got, expected any, opts ...Options) bool {
	t.Helper()

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Reporter == nil {
		o.Reporter = TB(t)
	}

	out, err := Compare(got, expected, t.Name(), o)
	if err != nil {
		t.Fatalf("compare: %v", err)
		return false
	}
	return out.Passed
}

// Evaluate is Compare without reporting.
func Evaluate(got, expected any, opts Options) (Outcome, error) {
	if err := validate.Struct(opts); err != nil {
		return Outcome{}, fmt.Errorf("invalid options: %w", err)
	}

	dataType := opts.DataType
	if dataType == "" {
		dataType = DataText
		if shape.IsCollection(got) || shape.IsCollection(expected) {
			dataType = DataData
		}
	}

	a, b, err := lines(got, expected, opts.Dumper)
	if err != nil {
		return Outcome{}, err
	}

	stats := Stats{LinesA: len(a), LinesB: len(b)}
	if slices.Equal(a, b) {
		log.Debugf("compare: equal lines=%d", len(a))
		return Outcome{Passed: true, Stats: stats}, nil
	}

	offset := 0
	if dataType == DataText {
		offset = 1
	}

	context := opts.Context
	if context == 0 {
		context = differ.ContextFor(a, b)
	}
	log.Debugf("compare: differ lines=%d/%d type=%s context=%d", len(a), len(b), dataType, context)

	hunks := differ.Diff(a, b, context)
	s := differ.Summarize(hunks)
	stats.Changed, stats.Inserted, stats.Deleted = s.Changed, s.Inserted, s.Deleted

	report, err := render(a, b, hunks, opts, offset, context)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Report: report, Stats: stats}, nil
}

// lines flattens both values. If either cannot be classified both go through
// the dumper so the two sides stay comparable.
func lines(got, expected any, d Dumper) ([]string, []string, error) {
	sg, se := shape.Classify(got), shape.Classify(expected)
	log.Tracef("compare: shapes=%s/%s", sg, se)

	if sg != shape.Unclassified && se != shape.Unclassified {
		return flatten.Pair(got, expected, sg, se)
	}

	if d == nil {
		d = SpewDumper{}
	}
	a, err := dump(d, got)
	if err != nil {
		return nil, nil, err
	}
	b, err := dump(d, expected)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func dump(d Dumper, v any) ([]string, error) {
	seq, err := d.Dump(v)
	if err != nil {
		return nil, err
	}

	var out []string
	for line := range seq {
		out = append(out, escape.String(line))
	}
	return out, nil
}

func render(a, b []string, hunks []differ.Hunk, opts Options, offset, context int) (string, error) {
	labelA, labelB := opts.LabelA, opts.LabelB
	if labelA == "" {
		labelA = output.DefaultLabelA
	}
	if labelB == "" {
		labelB = output.DefaultLabelB
	}

	switch opts.Style {
	case StyleUnified:
		return output.UnifiedDiff(a, b, labelA, labelB, context)
	case StyleContext:
		return output.ContextDiff(a, b, labelA, labelB, context)
	}

	table := output.Table{
		LabelA:   labelA,
		LabelB:   labelB,
		OffsetA:  offset,
		OffsetB:  offset,
		Locators: context < max(len(a), len(b)),
	}
	if opts.Color {
		table.Palette = output.DefaultPalette()
	}

	return table.Render(hunks), nil
}
