package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, grid.DefaultSheet, cfg.Sheet)
	assert.Equal(t, "", cfg.TemplatePath)
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, "", cfg.ConfigFile)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	file := filepath.Join(dir, "roadshow.yaml")
	require.NoError(t, os.WriteFile(file, []byte("template: tpl.xlsx\noutput_dir: out\nlog_level: warn\n"), 0644))
	t.Setenv("ROADSHOW_OUTPUT_DIR", "from-env")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "tpl.xlsx", cfg.TemplatePath)
	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, file, cfg.ConfigFile)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	// Registered so t restores the variable godotenv sets.
	t.Setenv("ROADSHOW_TEMPLATE", "")
	require.NoError(t, os.Unsetenv("ROADSHOW_TEMPLATE"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ROADSHOW_TEMPLATE=base.xlsx\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("ROADSHOW_TEMPLATE=local.xlsx\n"), 0644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "local.xlsx", cfg.TemplatePath)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(viper.New(), "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestConfigLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_row: 30\nheader_row: 29\n"), 0644))

	cfg := &Config{LayoutPath: path, Sheet: "Tracker"}
	l, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, 30, l.StartRow)
	assert.Equal(t, "Tracker", l.Sheet)
	assert.Equal(t, 9, l.ContactBase)
}
