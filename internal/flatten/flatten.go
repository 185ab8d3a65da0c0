// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flatten

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/tfctl/flatdiff/internal/escape"
	"github.com/tfctl/flatdiff/internal/log"
	"github.com/tfctl/flatdiff/internal/shape"
)

// Undef stands in for missing or nil cells.
const Undef = "<undef>"

// ErrInvariantViolation is returned when a caller asks for something the
// pipeline guarantees never happens, such as flattening an Unclassified value.
var ErrInvariantViolation = errors.New("internal invariant violation")

// numericRe matches cells that are right-justified within their column.
var numericRe = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// Flatten renders v, already classified as s, into display lines.
func Flatten(v any, s shape.Shape) ([]string, error) {
	log.Tracef("flatten: shape=%s", s)

	rv := shape.Indirect(v)

	switch s {
	case shape.Scalar:
		return Text(cell(rv, false)), nil

	case shape.ArrayOfScalars:
		lines := make([]string, rv.Len())
		for i := range lines {
			lines[i] = cell(shape.Elem(rv, i), true)
		}
		return lines, nil

	case shape.ArrayOfArraysOfScalars:
		rows := make([][]string, rv.Len())
		for i := range rows {
			inner := shape.Elem(rv, i)
			row := make([]string, inner.Len())
			for j := range row {
				row[j] = cell(shape.Elem(inner, j), true)
			}
			rows[i] = row
		}
		return Justify(rows), nil

	case shape.ArrayOfRecordsOfScalars:
		return Justify(records(rv, Columns(rv))), nil
	}

	return nil, fmt.Errorf("%w: cannot flatten %s value", ErrInvariantViolation, s)
}

// Pair flattens got and expected independently, except when both are arrays
// of records. Those are laid out as one table: a single heading holding the
// sorted union of keys seen on either side, and column widths shared across
// both sides, so that only rows that really differ show up as changes.
func Pair(got, expected any, sg, se shape.Shape) (a, b []string, err error) {
	if sg == shape.ArrayOfRecordsOfScalars && se == shape.ArrayOfRecordsOfScalars {
		rg, re := shape.Indirect(got), shape.Indirect(expected)
		columns := Columns(rg, re)
		tables := JustifyTables(records(rg, columns), records(re, columns))
		return tables[0], tables[1], nil
	}

	if a, err = Flatten(got, sg); err != nil {
		return nil, nil, err
	}
	if b, err = Flatten(expected, se); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Text splits s after every newline and escapes each piece. A trailing
// fragment without a newline is its own line; an empty string has no lines.
func Text(s string) []string {
	lines := slices.Collect(Lines(s))
	for i, line := range lines {
		lines[i] = escape.String(line)
	}
	return lines
}

// Lines yields s split after each newline, terminators included.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.SplitAfterSeq(s, "\n") {
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Justify pads every row to the widest row with Undef, pads each cell to its
// column's width (numbers right-justified, everything else left-justified)
// and joins the cells of each row with a comma.
func Justify(rows [][]string) []string {
	return JustifyTables(rows)[0]
}

// JustifyTables is Justify over several tables that share column widths.
func JustifyTables(tables ...[][]string) [][]string {
	cols := 0
	for _, rows := range tables {
		for _, row := range rows {
			cols = max(cols, len(row))
		}
	}

	widths := make([]int, cols)
	for _, rows := range tables {
		for i, row := range rows {
			for len(row) < cols {
				row = append(row, Undef)
			}
			rows[i] = row
			for c, v := range row {
				widths[c] = max(widths[c], len(v))
			}
		}
	}

	out := make([][]string, len(tables))
	for t, rows := range tables {
		lines := make([]string, len(rows))
		for i, row := range rows {
			cells := make([]string, cols)
			for c, v := range row {
				if numericRe.MatchString(v) {
					cells[c] = fmt.Sprintf("%*s", widths[c], v)
				} else {
					cells[c] = fmt.Sprintf("%-*s", widths[c], v)
				}
			}
			lines[i] = strings.Join(cells, ",")
		}
		out[t] = lines
	}

	return out
}

// Columns returns the sorted union of keys across every record of every
// array of records given.
func Columns(arrays ...reflect.Value) []string {
	seen := map[string]bool{}
	var columns []string
	for _, rv := range arrays {
		for i := 0; i < rv.Len(); i++ {
			for _, k := range shape.Elem(rv, i).MapKeys() {
				name := fmt.Sprint(k.Interface())
				if !seen[name] {
					seen[name] = true
					columns = append(columns, name)
				}
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// records converts an array of records into rows ordered by columns, preceded
// by a heading row.
func records(rv reflect.Value, columns []string) [][]string {
	log.Tracef("record columns: columns=%v", columns)

	rows := make([][]string, 0, rv.Len()+1)

	heading := make([]string, len(columns))
	for c, name := range columns {
		heading[c] = escape.String(name)
	}
	rows = append(rows, heading)

	for i := 0; i < rv.Len(); i++ {
		record := shape.Elem(rv, i)
		byName := make(map[string]reflect.Value, record.Len())
		for _, k := range record.MapKeys() {
			byName[fmt.Sprint(k.Interface())] = shape.MapValue(record, k)
		}

		row := make([]string, len(columns))
		for c, name := range columns {
			v, ok := byName[name]
			if !ok {
				row[c] = Undef
				continue
			}
			row[c] = cell(v, true)
		}
		rows = append(rows, row)
	}

	return rows
}

// cell stringifies a scalar. nil renders as Undef. When escaped is false the
// raw string is returned so that Text can split it before escaping.
func cell(rv reflect.Value, escaped bool) string {
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return Undef
	}

	var s string
	if rv.Kind() == reflect.String {
		s = rv.String()
	} else {
		s = fmt.Sprint(rv.Interface())
	}

	if escaped {
		return escape.String(s)
	}
	return s
}
