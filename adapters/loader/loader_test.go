package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"datanova/domain/table"
	"datanova/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVInfersKinds(t *testing.T) {
	path := writeTempCSV(t, "amount,region,active,signup\n"+
		"10.5,North,true,2025-01-02\n"+
		"20,South,false,2025-02-03\n"+
		"N/A,,true,2025-03-04\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 4, tbl.NumCols())

	amount, _ := tbl.Column("amount")
	assert.Equal(t, table.KindNumeric, amount.Kind())
	assert.Equal(t, 1, amount.MissingCount(), "N/A token becomes a blank cell")
	assert.Equal(t, []float64{10.5, 20}, amount.NonMissingFloats())

	region, _ := tbl.Column("region")
	assert.Equal(t, table.KindText, region.Kind())
	assert.Equal(t, 1, region.MissingCount())

	active, _ := tbl.Column("active")
	assert.Equal(t, table.KindBool, active.Kind())
	assert.True(t, active.Bool(0))

	signup, _ := tbl.Column("signup")
	assert.Equal(t, table.KindDatetime, signup.Kind())
	assert.Equal(t, 2025, signup.Time(0).Year())
}

func TestLoadCSVMixedColumnStaysText(t *testing.T) {
	path := writeTempCSV(t, "v\n1\ntwo\n3\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	col, _ := tbl.Column("v")
	assert.Equal(t, table.KindText, col.Kind(), "one non-numeric cell keeps the column text")
	assert.Equal(t, 0, col.MissingCount())
}

func TestLoadCSVRaggedRowsPadded(t *testing.T) {
	path := writeTempCSV(t, "a,b,c\n1,x\n2,y,z\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	c, _ := tbl.Column("c")
	assert.True(t, c.IsMissing(0))
	assert.False(t, c.IsMissing(1))
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "a,b\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedFormat, errors.GetCode(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestLoadExcelFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Orders"))
	rows := [][]interface{}{
		{"amount", "region"},
		{10.5, "North"},
		{20.0, "South"},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Orders", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())

	amount, ok := tbl.Column("amount")
	require.True(t, ok)
	assert.Equal(t, table.KindNumeric, amount.Kind())
	assert.Equal(t, []float64{10.5, 20}, amount.NonMissingFloats())
}

func TestLoadExcelNamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	_, err := f.NewSheet("Extra")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Extra", "A1", "v"))
	require.NoError(t, f.SetCellValue("Extra", "A2", "hello"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := LoadWithOptions(path, Options{Sheet: "Extra"})
	require.NoError(t, err)
	col, ok := tbl.Column("v")
	require.True(t, ok)
	assert.Equal(t, "hello", col.CellString(0))
}

func TestLoadParquetRoundtrip(t *testing.T) {
	type record struct {
		Amount *float64 `parquet:"amount,optional"`
		Region string   `parquet:"region"`
		Active bool     `parquet:"active"`
	}

	a, b := 10.5, 20.0
	path := filepath.Join(t.TempDir(), "data.parquet")
	require.NoError(t, parquet.WriteFile(path, []record{
		{Amount: &a, Region: "North", Active: true},
		{Amount: &b, Region: "South", Active: false},
		{Amount: nil, Region: "East", Active: true},
	}))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 3, tbl.NumCols())

	amount, ok := tbl.Column("amount")
	require.True(t, ok)
	assert.Equal(t, table.KindNumeric, amount.Kind())
	assert.Equal(t, 1, amount.MissingCount(), "optional null becomes a blank cell")
	assert.Equal(t, []float64{10.5, 20}, amount.NonMissingFloats())

	region, ok := tbl.Column("region")
	require.True(t, ok)
	assert.Equal(t, table.KindText, region.Kind())
	assert.Equal(t, "North", region.CellString(0))

	active, ok := tbl.Column("active")
	require.True(t, ok)
	assert.Equal(t, table.KindBool, active.Kind())
	assert.True(t, active.Bool(0))
	assert.False(t, active.Bool(1))
}

func TestInferKindEmptyColumnDefaultsToText(t *testing.T) {
	assert.Equal(t, table.KindText, inferKind([]string{"", "na", "NULL"}))
}
