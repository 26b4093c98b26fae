package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", c.DataPath)
	assert.Equal(t, "iris_output", c.OutputDir)
	assert.Equal(t, "png", c.ChartFormat)
	assert.Equal(t, 10, c.HistBins)
	assert.Equal(t, 16.0, c.ChartWidthCm)
	assert.Equal(t, "info", c.LogLevel)
}

func TestSaveThenLoadRoundTripsFileValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := &Global{
		DataPath:      "/data/iris.csv",
		OutputDir:     "charts",
		ChartFormat:   "html",
		ChartWidthCm:  20,
		ChartHeightCm: 10,
		HistBins:      12,
		LogLevel:      "debug",
	}
	require.NoError(t, Save(c, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IRIS_HIST_BINS", "20")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hist_bins: 5\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, c.HistBins)
}

func TestLoadKeepsInvalidValuesForValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart_format: gif\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gif", c.ChartFormat)

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart_format")

	c.ChartFormat = "PNG"
	assert.NoError(t, c.Validate())
	c.HistBins = 0
	assert.Error(t, c.Validate())
}
