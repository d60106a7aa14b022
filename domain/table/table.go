package table

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind is the closed set of column kinds the profiling core dispatches on.
// Every aggregation strategy branches on Kind rather than inspecting cell
// values at runtime.
type Kind int

const (
	KindNumeric Kind = iota
	KindText
	KindBool
	KindDatetime
)

// String returns the kind label used in profile output.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	case KindDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Column is a single named, typed column with a missing mask. Exactly one of
// the backing slices is populated, matching Kind. Columns are immutable after
// construction.
type Column struct {
	name    string
	kind    Kind
	floats  []float64
	strings []string
	bools   []bool
	times   []time.Time
	missing []bool
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells, missing included.
func (c *Column) Len() int { return len(c.missing) }

// IsMissing reports whether the cell at row i is blank.
func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// MissingCount returns the number of blank cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// Float returns the numeric value at row i. Only valid for KindNumeric.
func (c *Column) Float(i int) float64 { return c.floats[i] }

// Bool returns the boolean value at row i. Only valid for KindBool.
func (c *Column) Bool(i int) bool { return c.bools[i] }

// Time returns the datetime value at row i. Only valid for KindDatetime.
func (c *Column) Time(i int) time.Time { return c.times[i] }

// CellString returns the display form of the cell at row i, regardless of
// kind. Missing cells return the empty string.
func (c *Column) CellString(i int) string {
	if c.missing[i] {
		return ""
	}
	switch c.kind {
	case KindNumeric:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	case KindText:
		return c.strings[i]
	case KindBool:
		return strconv.FormatBool(c.bools[i])
	case KindDatetime:
		return c.times[i].Format(time.RFC3339)
	default:
		return ""
	}
}

// NonMissingFloats returns the non-blank numeric values in row order.
// Only valid for KindNumeric.
func (c *Column) NonMissingFloats() []float64 {
	out := make([]float64, 0, len(c.floats))
	for i, v := range c.floats {
		if !c.missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// NumericColumn builds a numeric column. NaN values count as missing.
func NumericColumn(name string, values []float64) Column {
	missing := make([]bool, len(values))
	floats := make([]float64, len(values))
	copy(floats, values)
	for i, v := range values {
		if math.IsNaN(v) {
			missing[i] = true
		}
	}
	return Column{name: name, kind: KindNumeric, floats: floats, missing: missing}
}

// TextColumn builds a text column with no missing cells.
func TextColumn(name string, values []string) Column {
	missing := make([]bool, len(values))
	strs := make([]string, len(values))
	copy(strs, values)
	return Column{name: name, kind: KindText, strings: strs, missing: missing}
}

// BoolColumn builds a boolean column with no missing cells.
func BoolColumn(name string, values []bool) Column {
	missing := make([]bool, len(values))
	bools := make([]bool, len(values))
	copy(bools, values)
	return Column{name: name, kind: KindBool, bools: bools, missing: missing}
}

// TimeColumn builds a datetime column with no missing cells.
func TimeColumn(name string, values []time.Time) Column {
	missing := make([]bool, len(values))
	times := make([]time.Time, len(values))
	copy(times, values)
	return Column{name: name, kind: KindDatetime, times: times, missing: missing}
}

// Table is an in-memory dataset of named columns with a uniform row count.
// Tables are read-only after construction, so a single instance is safe to
// share between concurrent readers.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New assembles a table from columns, validating uniform length and unique
// names. A table with zero columns is valid and has zero rows.
func New(cols ...Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for i, col := range cols {
		if _, dup := t.index[col.name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", col.name, col.Len(), t.rows)
		}
		t.index[col.name] = i
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.cols[i], true
}

// ColumnAt returns the column at position i in dataset order.
func (t *Table) ColumnAt(i int) *Column { return &t.cols[i] }

// Names returns the column names in dataset order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.name
	}
	return names
}
