// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/flatdiff/internal/differ"
)

const (
	DefaultLabelA = "Got"
	DefaultLabelB = "Expected"
)

// Row boundary markers and the filler drawn in an absent slot.
const (
	markEqual   = "|"
	markChange  = "*"
	markLocator = "@"
	filler      = "~"
)

// Table renders hunks as a bordered side-by-side table.
type Table struct {
	// LabelA and LabelB head the two columns. Empty means the defaults.
	LabelA string
	LabelB string
	// OffsetA and OffsetB are added to hunk start positions in locator rows.
	OffsetA int
	OffsetB int
	// Locators emits a row before each hunk showing where it starts.
	Locators bool
	// Palette colors the changed rows. Nil renders plain text.
	Palette *Palette
}

// Render renders hunks with the default labels and no colors.
func Render(hunks []differ.Hunk, offsetA, offsetB int, showLocators bool) string {
	return Table{OffsetA: offsetA, OffsetB: offsetB, Locators: showLocators}.Render(hunks)
}

// Render lays hunks out as a table. The width of each column is the widest of
// its label, its lines and, when shown, its locators.
func (t Table) Render(hunks []differ.Hunk) string {
	la, lb := t.labels()
	wa, wb := lipgloss.Width(la), lipgloss.Width(lb)

	for _, h := range hunks {
		if t.Locators {
			sa, sb := t.locators(h)
			wa, wb = max(wa, len(sa)), max(wb, len(sb))
		}
		for _, r := range h.Rows {
			wa, wb = max(wa, lipgloss.Width(r.A)), max(wb, lipgloss.Width(r.B))
		}
	}

	border := "+" + strings.Repeat("-", wa+2) + "+" + strings.Repeat("-", wb+2) + "+\n"

	var b strings.Builder
	b.WriteString(border)
	line(&b, markEqual, pad(la, wa), pad(lb, wb))
	b.WriteString(border)

	for _, h := range hunks {
		if t.Locators {
			sa, sb := t.locators(h)
			line(&b, markLocator, pad(sa, wa), pad(sb, wb))
		}
		for _, r := range h.Rows {
			mark := markChange
			if r.Kind == differ.Equal {
				mark = markEqual
			}
			line(&b, mark, t.cell(r, sideA, wa), t.cell(r, sideB, wb))
		}
	}

	b.WriteString(border)
	return b.String()
}

func (t Table) labels() (string, string) {
	la, lb := t.LabelA, t.LabelB
	if la == "" {
		la = DefaultLabelA
	}
	if lb == "" {
		lb = DefaultLabelB
	}
	return la, lb
}

// locators returns the display positions at which h starts.
func (t Table) locators(h differ.Hunk) (string, string) {
	return strconv.Itoa(h.StartA + t.OffsetA), strconv.Itoa(h.StartB + t.OffsetB)
}

type side int

const (
	sideA side = iota
	sideB
)

// cell renders one side of r padded to width w.
func (t Table) cell(r differ.Row, s side, w int) string {
	text, other, present := r.A, r.B, r.HasA()
	if s == sideB {
		text, other, present = r.B, r.A, r.HasB()
	}

	if !present {
		return t.Palette.paintFiller(strings.Repeat(filler, w))
	}

	return t.Palette.paint(r.Kind, s, text, other) + strings.Repeat(" ", w-lipgloss.Width(text))
}

func line(b *strings.Builder, mark, a, bb string) {
	b.WriteString(mark)
	b.WriteString(" ")
	b.WriteString(a)
	b.WriteString(" ")
	b.WriteString(mark)
	b.WriteString(" ")
	b.WriteString(bb)
	b.WriteString(" ")
	b.WriteString(mark)
	b.WriteString("\n")
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}
