package render

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
	"datanova/internal/aggregate"
	"datanova/internal/errors"
)

// Hist builds a histogram figure for one numeric column: equal-width bins
// over the configured range plus the ten-statistic summary table. An
// all-missing column yields a figure with no bins and a null-valued table.
func Hist(t *table.Table, column string, cfg eda.HistConfig) (*eda.HistFigure, error) {
	if cfg.XLim != nil && cfg.XLim.Min >= cfg.XLim.Max {
		return nil, errors.InvalidInput(
			fmt.Sprintf("invalid x-limit [%g, %g]: min must be below max", cfg.XLim.Min, cfg.XLim.Max))
	}

	summary, err := aggregate.NumericSummary(t, column)
	if err != nil {
		return nil, err
	}

	col, _ := t.Column(column)
	bins := buildBins(col.NonMissingFloats(), cfg)

	return &eda.HistFigure{
		ID:         core.FigureID(core.NewID()),
		ColumnName: column,
		ChartTitle: "Histogram of " + column,
		Bins:       bins,
		Stats:      summary,
		Config:     cfg,
	}, nil
}

// buildBins computes equal-width histogram buckets. When an x-limit is set,
// values outside it are excluded, matching the plotted range.
func buildBins(data []float64, cfg eda.HistConfig) []eda.Bin {
	nBins := cfg.Bins
	if nBins < 1 {
		nBins = eda.DefaultBins
	}

	var lo, hi float64
	if cfg.XLim != nil {
		lo, hi = cfg.XLim.Min, cfg.XLim.Max
		filtered := data[:0:0]
		for _, v := range data {
			if v >= lo && v <= hi {
				filtered = append(filtered, v)
			}
		}
		data = filtered
	}
	if len(data) == 0 {
		return nil
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if cfg.XLim == nil {
		lo, hi = sorted[0], sorted[len(sorted)-1]
	}
	if lo == hi {
		// Degenerate range: a single bucket centered on the value.
		lo -= 0.5
		hi += 0.5
	}

	dividers := make([]float64, nBins+1)
	floats.Span(dividers, lo, hi)

	// stat.Histogram treats the top divider as exclusive; nudge it past the
	// maximum so the value lands in the last bucket. The reported bin edges
	// keep the exact data range.
	buckets := append([]float64(nil), dividers...)
	buckets[nBins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, buckets, sorted, nil)

	bins := make([]eda.Bin, nBins)
	for i := range bins {
		bins[i] = eda.Bin{
			Low:   dividers[i],
			High:  dividers[i+1],
			Count: int(counts[i]),
			Label: fmt.Sprintf("[%.4g, %.4g)", dividers[i], dividers[i+1]),
		}
	}
	bins[nBins-1].Label = fmt.Sprintf("[%.4g, %.4g]", dividers[nBins-1], dividers[nBins])
	return bins
}
