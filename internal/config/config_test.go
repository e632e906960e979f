package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 500, cfg.Canvas.Height)
	assert.Equal(t, "map.png", cfg.Background.Path)
	assert.False(t, cfg.Share.Enabled)
	assert.Equal(t, 8888, cfg.Share.Port)
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	body := `{
		"logLevel": "debug",
		"canvas": { "width": 640 },
		"background": { "path": "/srv/maps/intersectie.jpg" },
		"share": { "enabled": true }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 500, cfg.Canvas.Height)
	assert.Equal(t, "/srv/maps/intersectie.jpg", cfg.Background.Path)
	assert.True(t, cfg.Share.Enabled)
	assert.Equal(t, 8888, cfg.Share.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("ACCIDENTSKETCH_SHARE_PORT", "9999")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Share.Port)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyCanvas(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"canvas": {"height": 0}}`), 0644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "canvas size")
}
