package aggregate

import (
	"sort"

	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
	"datanova/internal/errors"
)

// MissingSentinel is the category that missing cells are coerced to before
// counting. A genuine "N/A" string in the source data is indistinguishable
// from a coerced missing cell; that collision is accepted.
const MissingSentinel = "N/A"

// TopCategories counts the distinct values of one column and returns the
// topN most frequent as a frequency table. Rows sort by descending count;
// equal counts break by descending lexicographic order of the value string.
// Percentages and cumulative percentages are computed over the full
// distribution before truncation, so a truncated table's last cumulative
// value reflects only the coverage of the rows shown.
func TopCategories(t *table.Table, column string, topN int) (eda.FrequencyTable, error) {
	col, ok := t.Column(column)
	if !ok {
		return eda.FrequencyTable{}, errors.ColumnNotFound(column)
	}
	if topN < 1 {
		return eda.FrequencyTable{}, errors.InvalidInput("top-N must be at least 1")
	}

	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		v := MissingSentinel
		if !col.IsMissing(i) {
			v = col.CellString(i)
		}
		counts[v]++
	}

	ft := eda.FrequencyTable{
		Column:         column,
		TotalRows:      col.Len(),
		DistinctValues: len(counts),
	}
	if col.Len() == 0 {
		return ft, nil
	}

	rows := make([]eda.FrequencyRow, 0, len(counts))
	for v, n := range counts {
		rows = append(rows, eda.FrequencyRow{Value: v, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Value > rows[j].Value
	})

	total := float64(col.Len())
	cumulative := 0.0
	for i := range rows {
		rows[i].Percentage = core.Round2(100 * float64(rows[i].Count) / total)
		cumulative += rows[i].Percentage
		rows[i].Cumulative = core.Round2(cumulative)
	}

	if len(rows) > topN {
		rows = rows[:topN]
	}
	ft.Rows = rows
	return ft, nil
}
