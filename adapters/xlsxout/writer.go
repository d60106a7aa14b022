// Package xlsxout renders figures and profiles as Excel workbooks: the
// aggregate tables as sheet data plus a native chart sized from the figure
// configuration.
package xlsxout

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"datanova/domain/eda"
)

const (
	dataSheet  = "Data"
	chartSheet = "Chart"
	// Chart dimensions are configured in inches; Excel wants pixels.
	pixelsPerInch = 96
)

// WriteBarFigure writes a bar figure as a workbook: the frequency table on
// the data sheet and a horizontal bar chart of occurrences per category.
func WriteBarFigure(fig *eda.BarFigure, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return err
	}

	header := fig.Frequencies.Header()
	for c, h := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(dataSheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range fig.Frequencies.Rows {
		if err := setRow(f, r+2, row.Value, row.Count, row.Percentage, row.Cumulative); err != nil {
			return err
		}
	}

	n := len(fig.Frequencies.Rows)
	if n > 0 {
		if _, err := f.NewSheet(chartSheet); err != nil {
			return err
		}
		chart := &excelize.Chart{
			Type: excelize.Bar,
			Series: []excelize.ChartSeries{{
				Name:       "Occurrences",
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", dataSheet, n+1),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", dataSheet, n+1),
				Fill:       chartFill(fig.Config.BarColor),
			}},
			Title:     []excelize.RichTextRun{{Text: fig.ChartTitle}},
			Dimension: chartDimension(fig.Config.Width, fig.Config.Height),
			Legend:    excelize.ChartLegend{Position: "none"},
		}
		if err := f.AddChart(chartSheet, "A1", chart); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// WriteHistFigure writes a histogram figure as a workbook: bin counts and
// the statistics table on the data sheet, and a column chart of the bins.
func WriteHistFigure(fig *eda.HistFigure, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return err
	}

	if err := setRow(f, 1, "Bin", "Count"); err != nil {
		return err
	}
	for r, bin := range fig.Bins {
		if err := setRow(f, r+2, bin.Label, bin.Count); err != nil {
			return err
		}
	}

	// Statistics table to the right of the bin data.
	for c, h := range fig.Stats.Header() {
		cell, _ := excelize.CoordinatesToCellName(c+4, 1)
		if err := f.SetCellValue(dataSheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range fig.Stats.Rows {
		cell, _ := excelize.CoordinatesToCellName(4, r+2)
		if err := f.SetCellValue(dataSheet, cell, row.Statistic); err != nil {
			return err
		}
		if row.Value != nil {
			cell, _ = excelize.CoordinatesToCellName(5, r+2)
			if err := f.SetCellValue(dataSheet, cell, *row.Value); err != nil {
				return err
			}
		}
	}

	n := len(fig.Bins)
	if n > 0 {
		if _, err := f.NewSheet(chartSheet); err != nil {
			return err
		}
		chart := &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       "Count",
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", dataSheet, n+1),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", dataSheet, n+1),
				Fill:       chartFill(fig.Config.BarColor),
			}},
			Title:     []excelize.RichTextRun{{Text: fig.ChartTitle}},
			Dimension: chartDimension(fig.Config.Width, fig.Config.Height),
			Legend:    excelize.ChartLegend{Position: "none"},
		}
		if err := f.AddChart(chartSheet, "A1", chart); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// WriteProfile writes the full data-quality profile as a single worksheet.
// Undefined statistics stay as empty cells.
func WriteProfile(p eda.Profile, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Profile"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for c, h := range p.Header() {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range p.Rows {
		values := []interface{}{
			row.Name, row.KindLabel, row.MissingCount,
			intCell(row.BlankPct), row.UniqueValues, stringCell(row.MostFrequent),
			floatCell(row.Mean), floatCell(row.StdDev), floatCell(row.Min),
			floatCell(row.Q25), floatCell(row.Median), floatCell(row.Q75),
			floatCell(row.Max),
		}
		for c, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	for c, v := range values {
		cell, _ := excelize.CoordinatesToCellName(c+1, row)
		if err := f.SetCellValue(dataSheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func chartFill(color string) excelize.Fill {
	return excelize.Fill{
		Type:    "pattern",
		Pattern: 1,
		Color:   []string{strings.TrimPrefix(color, "#")},
	}
}

func chartDimension(widthIn, heightIn float64) excelize.ChartDimension {
	if widthIn <= 0 {
		widthIn = eda.DefaultFigureWidth
	}
	if heightIn <= 0 {
		heightIn = eda.DefaultFigureHeight
	}
	return excelize.ChartDimension{
		Width:  uint(widthIn * pixelsPerInch),
		Height: uint(heightIn * pixelsPerInch),
	}
}

func intCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringCell(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
