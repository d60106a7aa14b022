package table

import (
	"math"
	"time"
)

// Builder accumulates cells for one column, including explicit nulls. It is
// the construction path used by loaders, where missing cells are interleaved
// with typed values.
type Builder struct {
	col Column
}

// NewBuilder starts a column of the given kind.
func NewBuilder(name string, kind Kind) *Builder {
	return &Builder{col: Column{name: name, kind: kind}}
}

// AppendNull appends a missing cell.
func (b *Builder) AppendNull() {
	b.col.missing = append(b.col.missing, true)
	switch b.col.kind {
	case KindNumeric:
		b.col.floats = append(b.col.floats, math.NaN())
	case KindText:
		b.col.strings = append(b.col.strings, "")
	case KindBool:
		b.col.bools = append(b.col.bools, false)
	case KindDatetime:
		b.col.times = append(b.col.times, time.Time{})
	}
}

// AppendFloat appends a numeric cell. NaN is recorded as missing.
func (b *Builder) AppendFloat(v float64) {
	if math.IsNaN(v) {
		b.AppendNull()
		return
	}
	b.col.floats = append(b.col.floats, v)
	b.col.missing = append(b.col.missing, false)
}

// AppendString appends a text cell.
func (b *Builder) AppendString(s string) {
	b.col.strings = append(b.col.strings, s)
	b.col.missing = append(b.col.missing, false)
}

// AppendBool appends a boolean cell.
func (b *Builder) AppendBool(v bool) {
	b.col.bools = append(b.col.bools, v)
	b.col.missing = append(b.col.missing, false)
}

// AppendTime appends a datetime cell.
func (b *Builder) AppendTime(v time.Time) {
	b.col.times = append(b.col.times, v)
	b.col.missing = append(b.col.missing, false)
}

// Len returns the number of cells appended so far.
func (b *Builder) Len() int { return len(b.col.missing) }

// Column finalizes the builder. The builder must not be reused afterwards.
func (b *Builder) Column() Column { return b.col }
