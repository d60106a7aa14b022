package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datanova/internal"
	"datanova/internal/config"
)

func setupCommandEnv(t *testing.T) string {
	t.Helper()

	var err error
	cfg, err = config.Load()
	require.NoError(t, err)
	logger = internal.NewDefaultLogger().Tagged("test")

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("v\n1\n2\n3\n"), 0o644))
	return path
}

func TestHistCommandRequiresBothLimits(t *testing.T) {
	path := setupCommandEnv(t)

	cmd := newHistCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{path, "v", "--xmin", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--xmax")
}

func TestHistCommandRejectsInvertedLimits(t *testing.T) {
	path := setupCommandEnv(t)

	cmd := newHistCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{path, "v", "--xmin", "5", "--xmax", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below")
}
