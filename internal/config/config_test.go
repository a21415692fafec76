package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Margin)
	assert.Equal(t, 95, cfg.Quality)
	assert.Equal(t, 1200, cfg.MaxWorkDim)
	assert.Equal(t, "auto", cfg.Method)
	assert.Equal(t, 1.1, cfg.AspectMin)
	assert.Equal(t, 1.8, cfg.AspectMax)
	assert.Equal(t, 1.4, cfg.AspectTarget)
	assert.Equal(t, 1.2, cfg.AspectGoodMin)
	assert.Equal(t, 1.6, cfg.AspectGoodMax)
	assert.Equal(t, "eng", cfg.Language)
	assert.Equal(t, "Tip*.png", cfg.Glob)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cardprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("margin: 5\nmethod: edges\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Margin)
	assert.Equal(t, "edges", cfg.Method)
	// Untouched keys keep their defaults.
	assert.Equal(t, 95, cfg.Quality)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("CARDPREP_QUALITY", "80")
	t.Setenv("CARDPREP_LOG_LEVEL", "debug")
	t.Setenv("CARDPREP_ASPECT_TARGET", "1.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Quality)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1.5, cfg.AspectTarget)
}

func TestLoad_MalformedConfigOnSearchPath(t *testing.T) {
	// A broken .cardprep.yaml must surface even when it was found by the
	// default search rather than named explicitly.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".cardprep.yaml"),
		[]byte("margin: [unclosed\n"), 0o644))

	t.Setenv("HOME", t.TempDir())
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	_, err = Load("")
	assert.Error(t, err)
}
