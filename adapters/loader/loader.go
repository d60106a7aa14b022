// Package loader reads tabular files into in-memory tables, dispatching on
// the file extension: CSV, Excel (.xlsx/.xls), and Parquet.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"datanova/domain/table"
	"datanova/internal/errors"
)

// Options adjusts how a file is loaded.
type Options struct {
	// Sheet selects the Excel worksheet by name; empty means the first sheet.
	// Ignored for other formats.
	Sheet string
}

// Load reads the file at path into a table using default options.
func Load(path string) (*table.Table, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads the file at path into a table. The format is chosen
// by the lowercased file extension; unrecognized extensions fail with an
// UNSUPPORTED_FORMAT error.
func LoadWithOptions(path string, opts Options) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadExcel(path, opts.Sheet)
	case ".parquet":
		return loadParquet(path)
	default:
		return nil, errors.UnsupportedFormat(ext)
	}
}

func loadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError("failed to read CSV file", err)
	}
	return fromStringRows(rows)
}

func loadExcel(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.ParseError("workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ParseError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	return fromStringRows(rows)
}

// fromStringRows builds a table from a header row plus string data rows,
// inferring each column's kind from its cells. Ragged rows are padded with
// missing cells.
func fromStringRows(rows [][]string) (*table.Table, error) {
	if len(rows) == 0 {
		return nil, errors.ParseError("file has no header row", nil)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	cells := make([][]string, len(headers))
	for c := range cells {
		cells[c] = make([]string, 0, len(rows)-1)
	}
	for _, row := range rows[1:] {
		for c := range headers {
			v := ""
			if c < len(row) {
				v = strings.TrimSpace(row[c])
			}
			cells[c] = append(cells[c], v)
		}
	}

	cols := make([]table.Column, 0, len(headers))
	for c, name := range headers {
		cols = append(cols, inferColumn(name, cells[c]))
	}
	return table.New(cols...)
}
