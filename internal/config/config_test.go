package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "chefcode.db", cfg.Cache.Path)
	assert.Equal(t, "development", cfg.Log.Env)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  base_url: https://chefcode.example.com\n  api_key: secret\n  timeout_seconds: 30\nlog:\n  env: production\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://chefcode.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "secret", cfg.Server.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "production", cfg.Log.Env)
	// untouched sections keep their defaults
	assert.Equal(t, "chefcode.db", cfg.Cache.Path)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHEFCODE_API_URL", "http://10.0.0.5:8000")
	t.Setenv("CHEFCODE_API_KEY", "from-env")
	t.Setenv("CHEFCODE_TIMEOUT_SECONDS", "5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.Server.BaseURL)
	assert.Equal(t, "from-env", cfg.Server.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}
