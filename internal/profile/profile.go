package profile

import (
	"github.com/montanaflynn/stats"

	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
)

// Build computes the full data-quality profile of a table: the column
// summaries merged with per-column descriptive statistics. Every column gets
// exactly one row, in dataset order; columns whose statistics are undefined
// (non-numeric kind, all-missing, single sample for the standard deviation)
// keep nil in those fields. A zero-column table yields a zero-row profile.
func Build(t *table.Table) eda.Profile {
	summaries := Summarize(t)
	rows := make([]eda.ProfileRow, 0, len(summaries))
	for i, s := range summaries {
		row := eda.ProfileRow{ColumnSummary: s}
		if s.Kind == table.KindNumeric {
			describeNumeric(t.ColumnAt(i), &row)
		}
		rows = append(rows, row)
	}
	return eda.Profile{Rows: rows}
}

// describeNumeric fills the descriptive-statistics half of a profile row
// from the column's non-missing values.
func describeNumeric(col *table.Column, row *eda.ProfileRow) {
	data := col.NonMissingFloats()
	if len(data) == 0 {
		return
	}

	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)

	row.Mean = rounded(mean)
	row.Min = rounded(min)
	row.Max = rounded(max)
	row.Median = rounded(median)
	row.Q25 = rounded(core.Quantile(data, 0.25))
	row.Q75 = rounded(core.Quantile(data, 0.75))

	if len(data) >= 2 {
		sd, _ := stats.StandardDeviationSample(data)
		row.StdDev = rounded(sd)
	}
}

func rounded(v float64) *float64 {
	r := core.Round2(v)
	return &r
}
