package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LEADBOARD_API_URL", "")
	t.Setenv("LEADBOARD_API_TOKEN", "")

	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:1337", cfg.APIURL)
	assert.Empty(t, cfg.APIToken)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "admin", cfg.Password)
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestBaseURLAddsAPIPrefix(t *testing.T) {
	cfg := &Config{APIURL: "http://localhost:1337"}
	assert.Equal(t, "http://localhost:1337/api", cfg.BaseURL())

	cfg.APIURL = "http://backend:1337/"
	assert.Equal(t, "http://backend:1337/api", cfg.BaseURL())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LEADBOARD_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1337", cfg.APIURL)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LEADBOARD_API_URL", "")
	t.Setenv("LEADBOARD_API_TOKEN", "")

	cfg := DefaultConfig()
	cfg.APIURL = "http://backend:1337"
	cfg.APIToken = "tok-123"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:1337", loaded.APIURL)
	assert.Equal(t, "tok-123", loaded.APIToken)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LEADBOARD_API_URL", "")
	t.Setenv("LEADBOARD_API_TOKEN", "")

	cfg := DefaultConfig()
	cfg.APIURL = "http://from-file:1337"
	require.NoError(t, cfg.Save())

	t.Setenv("LEADBOARD_API_URL", "http://from-env:1337")
	t.Setenv("LEADBOARD_API_TOKEN", "env-token")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:1337", loaded.APIURL)
	assert.Equal(t, "env-token", loaded.APIToken)
}

func TestSaveCreatesConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(home, ".leadboard", "config.yaml"))
	assert.NoError(t, err)
}
