package render

import (
	"datanova/domain/core"
	"datanova/domain/eda"
	"datanova/domain/table"
	"datanova/internal/aggregate"
)

// Bar builds a bar figure for one categorical column: its top-N frequency
// table plus styling. Category labels longer than the configured width are
// truncated for display; the truncation never touches the input table.
func Bar(t *table.Table, column string, cfg eda.BarConfig) (*eda.BarFigure, error) {
	ft, err := aggregate.TopCategories(t, column, cfg.TopN)
	if err != nil {
		return nil, err
	}

	if cfg.LabelWidth > 0 {
		for i, row := range ft.Rows {
			// Truncate on rune boundaries so multi-byte labels stay valid.
			if r := []rune(row.Value); len(r) > cfg.LabelWidth {
				ft.Rows[i].Value = string(r[:cfg.LabelWidth]) + "..."
			}
		}
	}

	return &eda.BarFigure{
		ID:          core.FigureID(core.NewID()),
		ColumnName:  column,
		ChartTitle:  "Bar Chart of " + column,
		Frequencies: ft,
		Config:      cfg,
	}, nil
}
