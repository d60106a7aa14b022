package loader

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"datanova/domain/table"
	"datanova/internal/errors"
)

// loadParquet reads a flat-schema parquet file into a table. Column kinds
// come from the parquet physical and logical types, so no string inference
// happens on this path.
func loadParquet(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, errors.ParseError("failed to open parquet file", err)
	}

	fields := pf.Schema().Fields()
	builders := make([]*table.Builder, len(fields))
	converters := make([]func(parquet.Value), len(fields))
	for i, field := range fields {
		if !field.Leaf() {
			return nil, errors.InvalidInput(
				fmt.Sprintf("nested parquet column %q is not supported", field.Name()))
		}
		b := table.NewBuilder(field.Name(), parquetKind(field))
		builders[i] = b
		converters[i] = parquetConverter(field, b)
	}

	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(rg, builders, converters); err != nil {
			return nil, err
		}
	}

	cols := make([]table.Column, len(builders))
	for i, b := range builders {
		cols[i] = b.Column()
	}
	return table.New(cols...)
}

func readRowGroup(rg parquet.RowGroup, builders []*table.Builder, converters []func(parquet.Value)) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, 256)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			for _, v := range row {
				ci := v.Column()
				if ci < 0 || ci >= len(builders) {
					continue
				}
				if v.IsNull() {
					builders[ci].AppendNull()
					continue
				}
				converters[ci](v)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.ParseError("failed to read parquet rows", err)
		}
	}
}

// parquetKind maps a leaf field to a column kind.
func parquetKind(field parquet.Field) table.Kind {
	lt := field.Type().LogicalType()
	if lt != nil {
		switch {
		case lt.UTF8 != nil:
			return table.KindText
		case lt.Timestamp != nil, lt.Date != nil:
			return table.KindDatetime
		}
	}
	switch field.Type().Kind() {
	case parquet.Boolean:
		return table.KindBool
	case parquet.Int32, parquet.Int64, parquet.Float, parquet.Double:
		return table.KindNumeric
	default:
		// ByteArray without UTF8 annotation, Int96, fixed-length binary.
		return table.KindText
	}
}

// parquetConverter returns the append function for one leaf field.
func parquetConverter(field parquet.Field, b *table.Builder) func(parquet.Value) {
	lt := field.Type().LogicalType()
	if lt != nil {
		switch {
		case lt.UTF8 != nil:
			return func(v parquet.Value) { b.AppendString(string(v.ByteArray())) }
		case lt.Timestamp != nil:
			unit := lt.Timestamp.Unit
			return func(v parquet.Value) { b.AppendTime(timestampValue(v.Int64(), unit.Millis != nil, unit.Micros != nil)) }
		case lt.Date != nil:
			return func(v parquet.Value) { b.AppendTime(time.Unix(int64(v.Int32())*86400, 0).UTC()) }
		}
	}
	switch field.Type().Kind() {
	case parquet.Boolean:
		return func(v parquet.Value) { b.AppendBool(v.Boolean()) }
	case parquet.Int32, parquet.Int64:
		return func(v parquet.Value) { b.AppendFloat(float64(v.Int64())) }
	case parquet.Float, parquet.Double:
		return func(v parquet.Value) { b.AppendFloat(v.Double()) }
	default:
		return func(v parquet.Value) { b.AppendString(v.String()) }
	}
}

func timestampValue(ts int64, millis, micros bool) time.Time {
	switch {
	case millis:
		return time.UnixMilli(ts).UTC()
	case micros:
		return time.UnixMicro(ts).UTC()
	default:
		return time.Unix(0, ts).UTC()
	}
}
