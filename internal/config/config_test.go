package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datanova/domain/eda"
	"datanova/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, eda.DefaultTopN, cfg.Charts.TopN)
	assert.Equal(t, eda.DefaultBins, cfg.Charts.Bins)
	assert.Equal(t, eda.DefaultBarColor, cfg.Charts.BarColor)
	assert.Equal(t, eda.DefaultFigureWidth, cfg.Charts.FigureWidth)
	assert.Equal(t, ".", cfg.Output.Dir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATANOVA_TOP_N", "12")
	t.Setenv("DATANOVA_BAR_COLOR", "#ff0000")
	t.Setenv("DATANOVA_OUTPUT_DIR", "/tmp/figures")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Charts.TopN)
	assert.Equal(t, "#ff0000", cfg.Charts.BarColor)
	assert.Equal(t, "/tmp/figures", cfg.Output.Dir)
}

func TestLoadRejectsInvalidTopN(t *testing.T) {
	t.Setenv("DATANOVA_TOP_N", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("DATANOVA_BINS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, eda.DefaultBins, cfg.Charts.Bins)
}

func TestConfigFigureBuilders(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	bar := cfg.BarConfig()
	assert.Equal(t, cfg.Charts.TopN, bar.TopN)
	assert.Equal(t, cfg.Charts.LabelWidth, bar.LabelWidth)

	hist := cfg.HistConfig()
	assert.Equal(t, cfg.Charts.Bins, hist.Bins)
	assert.Nil(t, hist.XLim)
}

func TestPaletteHasEightColors(t *testing.T) {
	assert.Len(t, Palette, 8)
	for _, c := range Palette {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
	}
}
