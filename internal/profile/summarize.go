package profile

import (
	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
)

// Summarize computes per-column quality metadata for every column of the
// table, one summary per column in dataset order. It never fails: columns
// with no usable values produce nil statistics instead of errors.
//
// The modal value tie-break is deterministic: with equal counts, the value
// that reached the winning count first in row order wins.
func Summarize(t *table.Table) []eda.ColumnSummary {
	summaries := make([]eda.ColumnSummary, 0, t.NumCols())
	for i := 0; i < t.NumCols(); i++ {
		summaries = append(summaries, summarizeColumn(t.ColumnAt(i), t.NumRows()))
	}
	return summaries
}

func summarizeColumn(col *table.Column, rows int) eda.ColumnSummary {
	s := eda.ColumnSummary{
		Name:         col.Name(),
		Kind:         col.Kind(),
		KindLabel:    col.Kind().String(),
		MissingCount: col.MissingCount(),
	}

	if rows > 0 {
		pct := core.RoundWholePct(100 * float64(s.MissingCount) / float64(rows))
		s.BlankPct = &pct
	}

	counts := make(map[string]int)
	var modal string
	modalCount := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			continue
		}
		v := col.CellString(i)
		counts[v]++
		if counts[v] > modalCount {
			modalCount = counts[v]
			modal = v
		}
	}

	s.UniqueValues = len(counts)
	if modalCount > 0 {
		s.MostFrequent = &modal
	}
	return s
}
