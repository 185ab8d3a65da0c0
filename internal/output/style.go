// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tfctl/flatdiff/internal/config"
	"github.com/tfctl/flatdiff/internal/differ"
)

// Palette holds the styles used for non-equal rows. Within a changed row the
// characters that differ from the other side get the Emphasis style on top.
type Palette struct {
	Changed  lipgloss.Style
	Inserted lipgloss.Style
	Deleted  lipgloss.Style
	Emphasis lipgloss.Style
	Filler   lipgloss.Style
}

// NewPalette builds a Palette from foreground colors.
func NewPalette(changed, inserted, deleted, emphasis color.Color) *Palette {
	return &Palette{
		Changed:  lipgloss.NewStyle().Foreground(changed),
		Inserted: lipgloss.NewStyle().Foreground(inserted),
		Deleted:  lipgloss.NewStyle().Foreground(deleted),
		Emphasis: lipgloss.NewStyle().Foreground(emphasis).Bold(true).Underline(true),
		Filler:   lipgloss.NewStyle().Faint(true),
	}
}

// DefaultPalette resolves colors from the colors.* keys of the config file,
// falling back to defaults picked for the terminal's background.
func DefaultPalette() *Palette {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if c, err := config.GetString("colors." + key); err == nil {
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	return NewPalette(
		resolveColor("changed", "#b08800", "#f6be00"),
		resolveColor("inserted", "#22863a", "#56d364"),
		resolveColor("deleted", "#b31d28", "#f85149"),
		resolveColor("emphasis", "#6f42c1", "#d2a8ff"),
	)
}

// paint styles text, the s side of a row of the given kind. A nil Palette
// returns text unchanged.
func (p *Palette) paint(kind differ.Kind, s side, text string, other string) string {
	if p == nil {
		return text
	}

	switch kind {
	case differ.Inserted:
		return p.Inserted.Render(text)
	case differ.Deleted:
		return p.Deleted.Render(text)
	case differ.Changed:
		return p.highlight(s, text, other)
	}
	return text
}

func (p *Palette) paintFiller(text string) string {
	if p == nil {
		return text
	}
	return p.Filler.Render(text)
}

// highlight renders a changed cell with the runs that are missing from the
// other side emphasized.
func (p *Palette) highlight(s side, text string, other string) string {
	dmp := diffmatchpatch.New()

	a, b := text, other
	if s == sideB {
		a, b = other, text
	}
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))

	// Runs that only exist on the other side are skipped.
	own := diffmatchpatch.DiffDelete
	if s == sideB {
		own = diffmatchpatch.DiffInsert
	}

	var out strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			out.WriteString(p.Changed.Render(d.Text))
		case own:
			out.WriteString(p.Emphasis.Render(d.Text))
		}
	}
	return out.String()
}
