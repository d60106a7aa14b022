package config

import (
	"os"
	"strconv"

	"datanova/domain/eda"
	"datanova/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Charts ChartConfig
	Output OutputConfig
}

// ChartConfig holds figure defaults
type ChartConfig struct {
	TopN         int
	Bins         int
	BarColor     string
	FigureWidth  float64
	FigureHeight float64
	LabelWidth   int
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	Dir string
}

// Palette is the bar-color rotation used by the EDA sweep, cycled by column
// position.
var Palette = []string{
	"#826fc2", "#143499", "#4d9b1e", "#f865c6",
	"#ecd378", "#ba004c", "#8f4400", "#f65656",
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Charts: ChartConfig{
			TopN:         getEnvIntOrDefault("DATANOVA_TOP_N", eda.DefaultTopN),
			Bins:         getEnvIntOrDefault("DATANOVA_BINS", eda.DefaultBins),
			BarColor:     getEnvOrDefault("DATANOVA_BAR_COLOR", eda.DefaultBarColor),
			FigureWidth:  getEnvFloatOrDefault("DATANOVA_FIGURE_WIDTH", eda.DefaultFigureWidth),
			FigureHeight: getEnvFloatOrDefault("DATANOVA_FIGURE_HEIGHT", eda.DefaultFigureHeight),
			LabelWidth:   getEnvIntOrDefault("DATANOVA_LABEL_WIDTH", eda.DefaultLabelWidth),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("DATANOVA_OUTPUT_DIR", "."),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Charts.TopN < 1 {
		return errors.ConfigInvalid("DATANOVA_TOP_N must be at least 1")
	}
	if config.Charts.Bins < 1 {
		return errors.ConfigInvalid("DATANOVA_BINS must be at least 1")
	}
	if config.Charts.FigureWidth <= 0 || config.Charts.FigureHeight <= 0 {
		return errors.ConfigInvalid("figure dimensions must be positive")
	}
	return nil
}

// BarConfig builds the default bar-figure configuration.
func (c *Config) BarConfig() eda.BarConfig {
	return eda.BarConfig{
		TopN:       c.Charts.TopN,
		BarColor:   c.Charts.BarColor,
		Width:      c.Charts.FigureWidth,
		Height:     c.Charts.FigureHeight,
		LabelWidth: c.Charts.LabelWidth,
	}
}

// HistConfig builds the default histogram-figure configuration.
func (c *Config) HistConfig() eda.HistConfig {
	return eda.HistConfig{
		Bins:     c.Charts.Bins,
		BarColor: c.Charts.BarColor,
		Width:    c.Charts.FigureWidth,
		Height:   c.Charts.FigureHeight,
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
