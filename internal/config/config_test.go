package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "datekeeper.db", cfg.Database.Path)
	assert.Equal(t, "https://toolkit.rork.com/text/llm/", cfg.Guide.URL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Remote.Configured())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("REMOTE_URL", "https://backend.example.com")
	t.Setenv("REMOTE_API_KEY", "anon-key")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://backend.example.com", cfg.Remote.URL)
	assert.Equal(t, "anon-key", cfg.Remote.Key)
	assert.True(t, cfg.Remote.Configured())
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("GUIDE_URL=https://guide.example.com\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://guide.example.com", cfg.Guide.URL)
}

func TestRemoteConfig_Configured(t *testing.T) {
	assert.False(t, RemoteConfig{}.Configured())
	assert.False(t, RemoteConfig{URL: "https://backend.example.com"}.Configured())
	assert.False(t, RemoteConfig{Key: "anon-key"}.Configured())
	assert.True(t, RemoteConfig{URL: "https://backend.example.com", Key: "anon-key"}.Configured())
}
