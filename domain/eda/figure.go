package eda

import "datanova/domain/core"

// Default rendering geometry, matching the house report style: 13.33 x 6.0
// inch figures, green bars.
const (
	DefaultBarColor     = "#4d9b1e"
	DefaultFigureWidth  = 13.33
	DefaultFigureHeight = 6.0
	DefaultTopN         = 6
	DefaultBins         = 20
	DefaultLabelWidth   = 12
)

// BarConfig controls bar-figure rendering.
type BarConfig struct {
	TopN     int
	BarColor string
	// Width and Height are figure dimensions in inches.
	Width  float64
	Height float64
	// LabelWidth truncates category labels longer than this many characters.
	LabelWidth int
}

// DefaultBarConfig returns the standard bar-figure configuration.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		TopN:       DefaultTopN,
		BarColor:   DefaultBarColor,
		Width:      DefaultFigureWidth,
		Height:     DefaultFigureHeight,
		LabelWidth: DefaultLabelWidth,
	}
}

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// HistConfig controls histogram-figure rendering.
type HistConfig struct {
	Bins     int
	BarColor string
	Width    float64
	Height   float64
	// XLim restricts binning to a value range; nil bins the full extent.
	XLim *Range
}

// DefaultHistConfig returns the standard histogram-figure configuration.
func DefaultHistConfig() HistConfig {
	return HistConfig{
		Bins:     DefaultBins,
		BarColor: DefaultBarColor,
		Width:    DefaultFigureWidth,
		Height:   DefaultFigureHeight,
	}
}

// Bin is one histogram bucket over [Low, High) (the last bucket is closed).
type Bin struct {
	Low   float64
	High  float64
	Count int
	Label string
}

// Figure is a renderable chart-plus-table artifact. Renderers consume the
// figure's tables and config without reaching back into the raw dataset.
type Figure interface {
	// FigureID identifies the artifact.
	FigureID() core.FigureID
	// Column names the analyzed column.
	Column() string
	// Title is the chart heading.
	Title() string
}

// BarFigure combines a categorical frequency table with bar-chart styling.
type BarFigure struct {
	ID          core.FigureID
	ColumnName  string
	ChartTitle  string
	Frequencies FrequencyTable
	Config      BarConfig
}

func (f *BarFigure) FigureID() core.FigureID { return f.ID }
func (f *BarFigure) Column() string          { return f.ColumnName }
func (f *BarFigure) Title() string           { return f.ChartTitle }

// HistFigure combines histogram bins with the numeric summary table and
// histogram styling.
type HistFigure struct {
	ID         core.FigureID
	ColumnName string
	ChartTitle string
	Bins       []Bin
	Stats      NumericSummary
	Config     HistConfig
}

func (f *HistFigure) FigureID() core.FigureID { return f.ID }
func (f *HistFigure) Column() string          { return f.ColumnName }
func (f *HistFigure) Title() string           { return f.ChartTitle }
