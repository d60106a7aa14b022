package aggregate

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
	"datanova/internal/errors"
)

// NumericSummary computes the fixed ten-statistic summary of one numeric
// column. Missing values are dropped before the order and moment statistics;
// the standard deviation is the sample deviation (n-1) and is undefined with
// fewer than 2 non-missing values. Statistically undefined results are nil
// values, never errors: an all-missing column still yields a well-formed
// summary.
func NumericSummary(t *table.Table, column string) (eda.NumericSummary, error) {
	col, ok := t.Column(column)
	if !ok {
		return eda.NumericSummary{}, errors.ColumnNotFound(column)
	}
	if col.Kind() != table.KindNumeric {
		return eda.NumericSummary{}, errors.InvalidInput(
			fmt.Sprintf("column %q is %s, not numeric", column, col.Kind()))
	}

	total := col.Len()
	data := col.NonMissingFloats()

	var min, q25, mean, median, q75, max, stdDev *float64
	if len(data) > 0 {
		mn, _ := stats.Min(data)
		mx, _ := stats.Max(data)
		m, _ := stats.Mean(data)
		md, _ := stats.Median(data)
		min = rounded(mn)
		max = rounded(mx)
		mean = rounded(m)
		median = rounded(md)
		q25 = rounded(core.Quantile(data, 0.25))
		q75 = rounded(core.Quantile(data, 0.75))
	}
	if len(data) >= 2 {
		sd, _ := stats.StandardDeviationSample(data)
		stdDev = rounded(sd)
	}

	// Blank rate is defined as 0 for an empty column, not an error.
	pctBlank := 0.0
	if total > 0 {
		pctBlank = core.Round2(100 * (1 - float64(len(data))/float64(total)))
	}

	rowCount := float64(total)
	notBlank := float64(len(data))

	return eda.NumericSummary{
		Column: column,
		Rows: []eda.StatRow{
			{Statistic: eda.StatMin, Value: min},
			{Statistic: eda.StatQ25, Value: q25},
			{Statistic: eda.StatMean, Value: mean},
			{Statistic: eda.StatMedian, Value: median},
			{Statistic: eda.StatQ75, Value: q75},
			{Statistic: eda.StatMax, Value: max},
			{Statistic: eda.StatStdDev, Value: stdDev},
			{Statistic: eda.StatRowCount, Value: &rowCount},
			{Statistic: eda.StatNotBlank, Value: &notBlank},
			{Statistic: eda.StatPctBlank, Value: &pctBlank},
		},
	}, nil
}

func rounded(v float64) *float64 {
	r := core.Round2(v)
	return &r
}
