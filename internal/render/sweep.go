package render

import (
	"datanova/domain/eda"
	"datanova/domain/table"
	"datanova/internal/config"
)

// SweepOptions configures an EDA sweep. Zero-value fields fall back to the
// package defaults.
type SweepOptions struct {
	Bar     eda.BarConfig
	Hist    eda.HistConfig
	Palette []string
}

// EDA renders one figure per column of the table: histograms for numeric
// columns, bar charts for text and boolean columns. Entirely-missing columns
// and datetime columns produce no figure. Bar colors rotate through the
// palette by column position, so re-running on the same table reproduces the
// same styling.
func EDA(t *table.Table, opts SweepOptions) ([]eda.Figure, error) {
	if opts.Bar == (eda.BarConfig{}) {
		opts.Bar = eda.DefaultBarConfig()
	}
	if opts.Hist.Bins == 0 && opts.Hist.BarColor == "" {
		opts.Hist = eda.DefaultHistConfig()
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = config.Palette
	}

	var figs []eda.Figure
	for i := 0; i < t.NumCols(); i++ {
		col := t.ColumnAt(i)
		if col.MissingCount() == col.Len() {
			continue
		}

		color := palette[i%len(palette)]
		switch col.Kind() {
		case table.KindNumeric:
			cfg := opts.Hist
			cfg.BarColor = color
			fig, err := Hist(t, col.Name(), cfg)
			if err != nil {
				return nil, err
			}
			figs = append(figs, fig)
		case table.KindText, table.KindBool:
			cfg := opts.Bar
			cfg.BarColor = color
			fig, err := Bar(t, col.Name(), cfg)
			if err != nil {
				return nil, err
			}
			figs = append(figs, fig)
		default:
			// Datetime columns are profiled but not charted.
		}
	}
	return figs, nil
}
