package xlsxout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"datanova/domain/eda"
	"datanova/internal/profile"
	"datanova/internal/render"
	"datanova/internal/testkit"
)

func TestWriteBarFigureWorkbook(t *testing.T) {
	tbl := testkit.CountryTable()
	fig, err := render.Bar(tbl, "country", eda.DefaultBarConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "country_bar.xlsx")
	require.NoError(t, WriteBarFigure(fig, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "country", header)

	top, err := f.GetCellValue("Data", "A2")
	require.NoError(t, err)
	assert.Equal(t, "US", top)

	count, err := f.GetCellValue("Data", "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", count)

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Chart")
}

func TestWriteHistFigureWorkbook(t *testing.T) {
	tbl := testkit.RetailTable(42, 60)
	cfg := eda.DefaultHistConfig()
	cfg.Bins = 4
	fig, err := render.Hist(tbl, "amount", cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "amount_hist.xlsx")
	require.NoError(t, WriteHistFigure(fig, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	binHeader, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bin", binHeader)

	statHeader, err := f.GetCellValue("Data", "D1")
	require.NoError(t, err)
	assert.Equal(t, "Statistic", statHeader)

	firstStat, err := f.GetCellValue("Data", "D2")
	require.NoError(t, err)
	assert.Equal(t, eda.StatMin, firstStat)
}

func TestWriteProfileWorkbook(t *testing.T) {
	tbl := testkit.RetailTable(5, 40)
	path := filepath.Join(t.TempDir(), "profile.xlsx")

	prof := profile.Build(tbl)
	require.NoError(t, WriteProfile(prof, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Profile", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Variable Name", header)

	rows, err := f.GetRows("Profile")
	require.NoError(t, err)
	assert.Len(t, rows, tbl.NumCols()+1)
}
