// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"slices"

	golcs "github.com/yudai/golcs"

	"github.com/tfctl/flatdiff/internal/log"
)

const (
	// LargeInput is the line count above which either side counts as large.
	LargeInput = 25
	// LargeContext is the context used when either side is large.
	LargeContext = 3
	// SmallContext is the context used otherwise. It is big enough to show the
	// whole of a small input.
	SmallContext = 25
)

// Kind tags a row of a hunk.
type Kind int

const (
	Equal Kind = iota
	Changed
	Inserted
	Deleted
	Separator
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Changed:
		return "changed"
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	case Separator:
		return "separator"
	}
	return "unknown"
}

// Row is one aligned pair of lines. An absent side has an index of -1 and an
// empty text.
type Row struct {
	Kind   Kind
	A, B   string
	IndexA int
	IndexB int
}

// HasA reports whether the A side of the row is present.
func (r Row) HasA() bool { return r.IndexA >= 0 }

// HasB reports whether the B side of the row is present.
func (r Row) HasB() bool { return r.IndexB >= 0 }

// Hunk is a contiguous run of rows. StartA and StartB are the zero-based
// positions of the hunk's first line on each side.
type Hunk struct {
	StartA int
	StartB int
	Rows   []Row
}

// Stats counts the non-equal rows across a set of hunks.
type Stats struct {
	Changed  int
	Inserted int
	Deleted  int
}

// ContextFor returns the number of context lines to use for a and b.
func ContextFor(a, b []string) int {
	if len(a) > LargeInput || len(b) > LargeInput {
		return LargeContext
	}
	return SmallContext
}

// Diff aligns a and b on their longest common subsequence and returns the
// differences as hunks carrying up to context equal lines on either side of
// each change. Changes separated by no more than 2*context equal lines share
// a hunk. Identical inputs yield no hunks.
func Diff(a, b []string, context int) []Hunk {
	if slices.Equal(a, b) {
		return nil
	}
	context = max(context, 0)

	ops := opcodes(a, b)
	log.Tracef("diff: lines=%d/%d opcodes=%d context=%d", len(a), len(b), len(ops), context)

	var hunks []Hunk
	for _, g := range group(ops, context) {
		if h := build(g, a, b); len(h.Rows) > 0 {
			hunks = append(hunks, h)
		}
	}

	log.Debugf("diff: hunks=%d", len(hunks))
	return hunks
}

// Summarize counts the changed, inserted and deleted rows in hunks.
func Summarize(hunks []Hunk) (s Stats) {
	for _, h := range hunks {
		for _, r := range h.Rows {
			switch r.Kind {
			case Changed:
				s.Changed++
			case Inserted:
				s.Inserted++
			case Deleted:
				s.Deleted++
			}
		}
	}
	return
}

type tag byte

const (
	tagEqual   tag = 'e'
	tagReplace tag = 'r'
	tagDelete  tag = 'd'
	tagInsert  tag = 'i'
)

// opcode describes a[a1:a2] against b[b1:b2].
type opcode struct {
	tag    tag
	a1, a2 int
	b1, b2 int
}

// matches returns the aligned index pairs of an LCS of a and b in ascending
// order. The common prefix and suffix are matched directly so the LCS table
// only covers the part that differs.
func matches(a, b []string) []golcs.IndexPair {
	pre := 0
	for pre < len(a) && pre < len(b) && a[pre] == b[pre] {
		pre++
	}
	suf := 0
	for suf < len(a)-pre && suf < len(b)-pre && a[len(a)-1-suf] == b[len(b)-1-suf] {
		suf++
	}

	var pairs []golcs.IndexPair
	for i := 0; i < pre; i++ {
		pairs = append(pairs, golcs.IndexPair{Left: i, Right: i})
	}

	left := toInterfaces(a[pre : len(a)-suf])
	right := toInterfaces(b[pre : len(b)-suf])
	if len(left) > 0 && len(right) > 0 {
		mid := golcs.New(left, right).IndexPairs()
		slices.SortFunc(mid, func(x, y golcs.IndexPair) int { return x.Left - y.Left })
		for _, p := range mid {
			pairs = append(pairs, golcs.IndexPair{Left: p.Left + pre, Right: p.Right + pre})
		}
	}

	for k := suf; k > 0; k-- {
		pairs = append(pairs, golcs.IndexPair{Left: len(a) - k, Right: len(b) - k})
	}

	return pairs
}

// opcodes turns the LCS alignment into a sequence of edit operations that
// covers both inputs end to end.
func opcodes(a, b []string) []opcode {
	var ops []opcode
	i, j := 0, 0

	gap := func(ni, nj int) {
		switch {
		case ni > i && nj > j:
			ops = append(ops, opcode{tagReplace, i, ni, j, nj})
		case ni > i:
			ops = append(ops, opcode{tagDelete, i, ni, j, j})
		case nj > j:
			ops = append(ops, opcode{tagInsert, i, i, j, nj})
		}
	}

	for _, p := range matches(a, b) {
		gap(p.Left, p.Right)
		if n := len(ops); n > 0 && ops[n-1].tag == tagEqual && ops[n-1].a2 == p.Left && ops[n-1].b2 == p.Right {
			ops[n-1].a2++
			ops[n-1].b2++
		} else {
			ops = append(ops, opcode{tagEqual, p.Left, p.Left + 1, p.Right, p.Right + 1})
		}
		i, j = p.Left+1, p.Right+1
	}
	gap(len(a), len(b))

	return ops
}

// group splits ops into hunks of change blocks padded with n lines of
// context. Leading and trailing equal runs are trimmed to n lines; an equal
// run longer than 2*n closes one group and opens the next.
func group(ops []opcode, n int) [][]opcode {
	if len(ops) == 0 {
		return nil
	}

	codes := slices.Clone(ops)
	if first := &codes[0]; first.tag == tagEqual {
		first.a1 = max(first.a1, first.a2-n)
		first.b1 = max(first.b1, first.b2-n)
	}
	if last := &codes[len(codes)-1]; last.tag == tagEqual {
		last.a2 = min(last.a2, last.a1+n)
		last.b2 = min(last.b2, last.b1+n)
	}

	var groups [][]opcode
	var cur []opcode
	for _, c := range codes {
		if c.tag == tagEqual && c.a2-c.a1 > 2*n {
			cur = append(cur, opcode{tagEqual, c.a1, min(c.a2, c.a1+n), c.b1, min(c.b2, c.b1+n)})
			groups = append(groups, cur)
			cur = nil
			c.a1 = max(c.a1, c.a2-n)
			c.b1 = max(c.b1, c.b2-n)
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 && !(len(cur) == 1 && cur[0].tag == tagEqual) {
		groups = append(groups, cur)
	}

	return groups
}

// build lays out a group of opcodes as rows. Unequal runs are aligned pairwise
// and the longer side's surplus becomes Deleted or Inserted rows.
func build(g []opcode, a, b []string) Hunk {
	h := Hunk{StartA: g[0].a1, StartB: g[0].b1}
	changed := false

	for _, op := range g {
		na, nb := op.a2-op.a1, op.b2-op.b1
		for k := 0; k < max(na, nb); k++ {
			row := Row{IndexA: -1, IndexB: -1}
			if k < na {
				row.IndexA = op.a1 + k
				row.A = a[row.IndexA]
			}
			if k < nb {
				row.IndexB = op.b1 + k
				row.B = b[row.IndexB]
			}

			switch {
			case row.HasA() && row.HasB() && row.A == row.B:
				row.Kind = Equal
			case row.HasA() && row.HasB():
				row.Kind = Changed
			case row.HasA():
				row.Kind = Deleted
			default:
				row.Kind = Inserted
			}
			changed = changed || row.Kind != Equal

			h.Rows = append(h.Rows, row)
		}
	}

	if !changed {
		h.Rows = nil
	}
	return h
}

func toInterfaces(lines []string) []interface{} {
	out := make([]interface{}, len(lines))
	for i, l := range lines {
		out[i] = l
	}
	return out
}
