// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differences

import (
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every Report call.
type recorder struct {
	calls []report
}

type report struct {
	passed     bool
	name       string
	diagnostic string
}

func (r *recorder) Report(passed bool, name string, diagnostic string) {
	r.calls = append(r.calls, report{passed, name, diagnostic})
}

func compare(t *testing.T, got, expected any, opts Options) (Outcome, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts.Reporter = rec
	out, err := Compare(got, expected, "case", opts)
	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, out.Passed, rec.calls[0].passed)
	assert.Equal(t, out.Report, rec.calls[0].diagnostic)
	assert.Equal(t, "case", rec.calls[0].name)
	return out, rec
}

func table(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestCompareEqualScalars(t *testing.T) {
	out, _ := compare(t, "a", "a", Options{})
	assert.True(t, out.Passed)
	assert.Empty(t, out.Report)
}

func TestCompareChangedScalar(t *testing.T) {
	out, _ := compare(t, "a", "b", Options{})
	assert.False(t, out.Passed)
	assert.Equal(t, table(
		"+-----+----------+",
		"| Got | Expected |",
		"+-----+----------+",
		"* a   * b        *",
		"+-----+----------+",
	), out.Report)
}

func TestCompareDeletedLine(t *testing.T) {
	out, _ := compare(t, "a\nb\nc\n", "a\nc\n", Options{})
	assert.False(t, out.Passed)
	assert.Equal(t, table(
		"+-----+----------+",
		"| Got | Expected |",
		"+-----+----------+",
		`| a\n | a\n      |`,
		`* b\n * ~~~~~~~~ *`,
		`| c\n | c\n      |`,
		"+-----+----------+",
	), out.Report)
}

func TestCompareRecords(t *testing.T) {
	got := []map[string]any{{"a": 1, "b": 2}}
	expected := []map[string]any{{"a": 1, "c": 3}}

	out, _ := compare(t, got, expected, Options{})
	assert.False(t, out.Passed)
	assert.Equal(t, table(
		"+-------------------+-------------------+",
		"| Got               | Expected          |",
		"+-------------------+-------------------+",
		"| a,b      ,c       | a,b      ,c       |",
		"* 1,      2,<undef> * 1,<undef>,      3 *",
		"+-------------------+-------------------+",
	), out.Report)
}

func TestCompareStats(t *testing.T) {
	out, _ := compare(t, []int{1, 2, 3}, []int{1, 9, 3, 4}, Options{})
	assert.Equal(t, Stats{LinesA: 3, LinesB: 4, Changed: 1, Inserted: 1}, out.Stats)

	out, _ = compare(t, "x\n", "x\n", Options{})
	assert.Equal(t, Stats{LinesA: 1, LinesB: 1}, out.Stats)
}

func TestCompareNulCharacter(t *testing.T) {
	out, _ := compare(t, "\x00", "\x00", Options{})
	assert.True(t, out.Passed)
}

func TestCompareEmptyArrayUsesDumper(t *testing.T) {
	out, _ := compare(t, []any{}, []any{"a"}, Options{})
	assert.False(t, out.Passed)
	assert.Contains(t, out.Report, "(len=1)")

	out, _ = compare(t, []any{}, []any{"a"}, Options{Dumper: YAMLDumper{}})
	assert.False(t, out.Passed)
	assert.Contains(t, out.Report, "- a")
}

func TestCompareReflexive(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"multiline", "x\ny\n"},
		{"number", 42},
		{"scalars", []any{1, "two", nil}},
		{"matrix", [][]int{{1, 2}, {3}}},
		{"records", []map[string]any{{"k": "v"}, {"n": 1.5}}},
		{"map", map[string]int{"a": 1}},
		{"empty slice", []string{}},
		{"nested", []any{[]any{[]any{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := compare(t, tt.value, tt.value, Options{})
			assert.True(t, out.Passed)
		})
	}
}

func TestCompareSymmetricDetection(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{"strings", "a\nb\n", "a\n"},
		{"scalars", []int{1, 2, 3}, []int{1, 3}},
		{"records", []map[string]any{{"a": 1}}, []map[string]any{{"b": 1}}},
		{"mixed shapes", "a", []string{"a"}},
		{"dumped", map[string]int{"a": 1}, map[string]int{"a": 2}},
		{"equal", []string{"x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, _ := compare(t, tt.a, tt.b, Options{})
			ba, _ := compare(t, tt.b, tt.a, Options{})
			assert.Equal(t, ab.Passed, ba.Passed)
		})
	}
}

func TestCompareLocators(t *testing.T) {
	a := make([]string, 26)
	b := make([]string, 26)
	for i := range a {
		a[i] = "same"
		b[i] = "same"
	}
	b[13] = "other"

	out, _ := compare(t, a, b, Options{})
	require.False(t, out.Passed)

	lines := strings.Split(out.Report, "\n")
	assert.True(t, strings.HasPrefix(lines[3], "@ 10 "), lines[3])
	// Three rows of context either side of the change.
	assert.Equal(t, 6, strings.Count(out.Report, "| same | same     |"))
}

func TestCompareTextOffset(t *testing.T) {
	a := strings.Repeat("same\n", 26)
	b := strings.Replace(a, "same\n", "other\n", 1)

	out, _ := compare(t, a, b, Options{})
	require.False(t, out.Passed)
	assert.Contains(t, out.Report, "@ 1 ")

	out, _ = compare(t, a, b, Options{DataType: DataData})
	require.False(t, out.Passed)
	assert.Contains(t, out.Report, "@ 0 ")
}

func TestCompareExplicitContext(t *testing.T) {
	out, _ := compare(t, []int{1, 2, 3, 4, 5}, []int{1, 2, 9, 4, 5}, Options{Context: 1})
	require.False(t, out.Passed)
	assert.NotContains(t, out.Report, "| 1 ")
	assert.Contains(t, out.Report, "| 2 ")
	assert.Contains(t, out.Report, "@ 1 ")
}

func TestCompareLabels(t *testing.T) {
	out, _ := compare(t, "a", "b", Options{LabelA: "actual.txt", LabelB: "golden.txt"})
	assert.Contains(t, out.Report, "| actual.txt | golden.txt |")
}

func TestCompareStyles(t *testing.T) {
	out, _ := compare(t, "a\nb\n", "a\nc\n", Options{Style: StyleUnified})
	assert.Contains(t, out.Report, "--- Got")
	assert.Contains(t, out.Report, "+++ Expected")
	assert.Contains(t, out.Report, `-b\n`)

	out, _ = compare(t, "a\nb\n", "a\nc\n", Options{Style: StyleContext})
	assert.Contains(t, out.Report, "*** Got")
	assert.Contains(t, out.Report, `! b\n`)
}

func TestCompareZeroOptionsMatchExplicitDefaults(t *testing.T) {
	got, expected := []int{1, 2, 3}, []int{1, 9, 3}
	implicit, _ := compare(t, got, expected, Options{})
	explicit, _ := compare(t, got, expected, Options{
		DataType: DataData,
		Style:    StyleTable,
		Context:  25,
		LabelA:   "Got",
		LabelB:   "Expected",
	})
	assert.Equal(t, explicit, implicit)
}

func TestCompareInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"data type", Options{DataType: "binary"}},
		{"style", Options{Style: "side"}},
		{"context", Options{Context: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.opts.Reporter = rec
			_, err := Compare("a", "b", "case", tt.opts)
			assert.Error(t, err)
			assert.Empty(t, rec.calls)
		})
	}
}

type failingDumper struct{ err error }

func (d failingDumper) Dump(any) (iter.Seq[string], error) { return nil, d.err }

func TestCompareDumperErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{}

	_, err := Compare(map[string]int{"a": 1}, map[string]int{"a": 1}, "case",
		Options{Dumper: failingDumper{boom}, Reporter: rec})

	assert.Same(t, boom, err)
	assert.Empty(t, rec.calls)
}

func TestCompareTextAndData(t *testing.T) {
	rec := &recorder{}

	out, err := CompareText([]string{"x"}, []string{"y"}, "text", Options{Reporter: rec, Context: 0})
	require.NoError(t, err)
	assert.False(t, out.Passed)

	out, err = CompareData("x", "x", "data", Options{Reporter: rec})
	require.NoError(t, err)
	assert.True(t, out.Passed)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "text", rec.calls[0].name)
	assert.Equal(t, "data", rec.calls[1].name)
}

func TestAssert(t *testing.T) {
	assert.True(t, Assert(t, []int{1, 2}, []int{1, 2}))

	fake := &fakeTB{TB: t}
	assert.False(t, Assert(fake, "a", "b"))
	require.Len(t, fake.errors, 1)
	assert.Contains(t, fake.errors[0], "* a   * b        *")
	assert.True(t, strings.HasPrefix(fake.errors[0], t.Name()))
}
