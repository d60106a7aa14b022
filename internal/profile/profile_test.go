package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datanova/domain/table"
	"datanova/internal/testkit"
)

func mustTable(t *testing.T, cols ...table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New(cols...)
	require.NoError(t, err)
	return tbl
}

func TestBuildOneRowPerColumnInOrder(t *testing.T) {
	tbl := testkit.RetailTable(42, 50)

	prof := Build(tbl)
	require.Len(t, prof.Rows, tbl.NumCols())
	for i, row := range prof.Rows {
		assert.Equal(t, tbl.ColumnAt(i).Name(), row.Name)
	}
}

func TestBuildNumericStatistics(t *testing.T) {
	tbl := mustTable(t, table.NumericColumn("v", []float64{1, 2, 3, 4, math.NaN()}))

	prof := Build(tbl)
	require.Len(t, prof.Rows, 1)
	row := prof.Rows[0]

	assert.Equal(t, "numeric", row.KindLabel)
	assert.Equal(t, 1, row.MissingCount)
	require.NotNil(t, row.BlankPct)
	assert.Equal(t, 20, *row.BlankPct)
	assert.Equal(t, 4, row.UniqueValues)

	require.NotNil(t, row.Mean)
	assert.Equal(t, 2.5, *row.Mean)
	require.NotNil(t, row.Min)
	assert.Equal(t, 1.0, *row.Min)
	require.NotNil(t, row.Max)
	assert.Equal(t, 4.0, *row.Max)
	require.NotNil(t, row.Median)
	assert.Equal(t, 2.5, *row.Median)
	require.NotNil(t, row.Q25)
	assert.Equal(t, 1.75, *row.Q25)
	require.NotNil(t, row.Q75)
	assert.Equal(t, 3.25, *row.Q75)
	require.NotNil(t, row.StdDev)
	assert.Equal(t, 1.29, *row.StdDev, "sample standard deviation of 1..4, rounded")
}

func TestBuildNonNumericColumnsHaveNilStats(t *testing.T) {
	tbl := mustTable(t, table.TextColumn("s", []string{"a", "b", "a"}))

	row := Build(tbl).Rows[0]
	assert.Nil(t, row.Mean)
	assert.Nil(t, row.StdDev)
	assert.Nil(t, row.Min)
	assert.Nil(t, row.Max)
	require.NotNil(t, row.MostFrequent)
	assert.Equal(t, "a", *row.MostFrequent)
}

func TestBuildEmptyDataset(t *testing.T) {
	// 0 rows, 3 columns: degenerate but well-formed output.
	tbl := mustTable(t,
		table.NumericColumn("a", nil),
		table.TextColumn("b", nil),
		table.BoolColumn("c", nil),
	)

	prof := Build(tbl)
	require.Len(t, prof.Rows, 3)
	for _, row := range prof.Rows {
		assert.Nil(t, row.BlankPct, "missing fraction is undefined with 0 rows")
		assert.Equal(t, 0, row.UniqueValues)
		assert.Nil(t, row.MostFrequent)
		assert.Nil(t, row.Mean)
		assert.Nil(t, row.StdDev)
	}
}

func TestBuildZeroColumns(t *testing.T) {
	tbl := mustTable(t)
	assert.Empty(t, Build(tbl).Rows)
}

func TestSummarizeModeTieBreak(t *testing.T) {
	// "x" and "y" both appear twice; "x" reached 2 first in row order.
	tbl := mustTable(t, table.TextColumn("s", []string{"x", "y", "x", "y"}))

	s := Summarize(tbl)[0]
	require.NotNil(t, s.MostFrequent)
	assert.Equal(t, "x", *s.MostFrequent)
}

func TestSummarizeAllMissingColumn(t *testing.T) {
	b := table.NewBuilder("empty", table.KindText)
	b.AppendNull()
	b.AppendNull()
	tbl := mustTable(t, b.Column())

	s := Summarize(tbl)[0]
	assert.Equal(t, 2, s.MissingCount)
	require.NotNil(t, s.BlankPct)
	assert.Equal(t, 100, *s.BlankPct)
	assert.Equal(t, 0, s.UniqueValues)
	assert.Nil(t, s.MostFrequent, "no modal value when everything is blank")
}

func TestBuildSingleValueStdDevUndefined(t *testing.T) {
	tbl := mustTable(t, table.NumericColumn("v", []float64{5}))

	row := Build(tbl).Rows[0]
	require.NotNil(t, row.Mean)
	assert.Equal(t, 5.0, *row.Mean)
	assert.Nil(t, row.StdDev, "one sample carries no spread information")
}

func TestBuildIdenticalValues(t *testing.T) {
	tbl := mustTable(t, table.NumericColumn("v", []float64{3, 3, 3}))

	row := Build(tbl).Rows[0]
	require.NotNil(t, row.StdDev)
	assert.Equal(t, 0.0, *row.StdDev)
	assert.Equal(t, 3.0, *row.Min)
	assert.Equal(t, 3.0, *row.Max)
	assert.Equal(t, 3.0, *row.Mean)
	assert.Equal(t, 3.0, *row.Median)
}

func TestProfileRecordsShape(t *testing.T) {
	tbl := testkit.RetailTable(7, 20)
	prof := Build(tbl)

	header := prof.Header()
	records := prof.Records()
	require.Len(t, records, tbl.NumCols())
	for _, rec := range records {
		assert.Len(t, rec, len(header))
	}
}
