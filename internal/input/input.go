// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/flatdiff/internal/driller"
	"github.com/tfctl/flatdiff/internal/log"
)

// Formats understood by Load.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Formats lists every accepted format, FormatAuto first.
var Formats = []string{FormatAuto, FormatText, FormatJSON, FormatYAML, FormatCSV, FormatXLSX}

// Stdin is the file name that reads standard input.
const Stdin = "-"

var ErrFormat = errors.New("unsupported format")

// Source names one side of a comparison.
type Source struct {
	// Name is a file path or Stdin.
	Name string
	// Format is one of Formats. Empty means FormatAuto.
	Format string
	// Path narrows structured input with a driller path. Ignored for text.
	Path string
}

// stdin is swapped out by tests.
var stdin io.Reader = os.Stdin

// Load reads and decodes src.
func Load(src Source) (any, error) {
	format := src.Format
	if format == "" || format == FormatAuto {
		format = Detect(src.Name)
	}
	log.Debugf("input: name=%s format=%s path=%s", src.Name, format, src.Path)

	if format == FormatXLSX {
		if src.Name == Stdin {
			return nil, fmt.Errorf("%w: xlsx cannot be read from stdin", ErrFormat)
		}
		v, err := LoadXLSX(src.Name)
		if err != nil {
			return nil, err
		}
		return drill(v, src.Path)
	}

	data, err := read(src.Name)
	if err != nil {
		return nil, err
	}

	var v any
	switch format {
	case FormatText:
		return string(data), nil
	case FormatJSON:
		v, err = DecodeJSON(data, src.Path)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", src.Name, err)
		}
		return v, nil
	case FormatYAML:
		v, err = DecodeYAML(data)
	case FormatCSV:
		v, err = DecodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src.Name, err)
	}

	return drill(v, src.Path)
}

// Detect picks a format from the file extension, falling back to text.
func Detect(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	}
	return FormatText
}

func read(name string) ([]byte, error) {
	if name == Stdin {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// DecodeJSON decodes data, drilled to path when path is not empty.
func DecodeJSON(data []byte, path string) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	result, err := driller.Drill(gjson.ParseBytes(data), path)
	if err != nil {
		return nil, err
	}
	return result.Value(), nil
}

// DecodeYAML decodes a single YAML document.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeCSV turns CSV with a header row into records keyed by header.
func DecodeCSV(data []byte) (any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return Records(rows), nil
}

// LoadXLSX reads the first sheet of an XLSX workbook as records keyed by the
// sheet's first row.
func LoadXLSX(name string) (any, error) {
	f, err := xlsx.OpenFile(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", name)
	}

	sheet := f.Sheets[0]
	log.Debugf("input: %s sheet=%s of %d", name, sheet.Name, len(f.Sheets))

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}
	return Records(rows), nil
}

// Records keys every row after the first by the first row's cells. Missing
// trailing cells are left out of the record; cells past the header are
// dropped. Blank rows are skipped.
func Records(rows [][]string) []any {
	if len(rows) == 0 {
		return []any{}
	}

	header := rows[0]
	records := make([]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		record := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// drill applies path to a decoded value by round-tripping it through JSON.
func drill(v any, path string) (any, error) {
	if path == "" {
		return v, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("drilling %q: %w", path, err)
	}
	return DecodeJSON(data, path)
}
