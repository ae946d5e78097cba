package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, BackendVault, cfg.Backend)
	assert.Empty(t, cfg.VaultPath, "vault path must start unset")
	assert.Equal(t, RemoteMemory, cfg.RemoteKind)
	assert.NotEmpty(t, cfg.KVPath)
	assert.NotEmpty(t, cfg.AccountPath)
}

func TestLoadConfig_NoOverlays(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, BackendVault, cfg.Backend)
}

func TestLoadConfig_EnvOverridesJson(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"backend":"kv","vault_path":"/from/json"}`), 0o600))

	t.Setenv("MICROLOG_BACKEND", "remote")
	t.Setenv("MICROLOG_REMOTE_KIND", "s3")

	cfg, err := LoadConfig(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, "remote", cfg.Backend, "env wins over json")
	assert.Equal(t, "/from/json", cfg.VaultPath, "json value kept when env is unset")
	assert.Equal(t, RemoteS3, cfg.RemoteKind)
}
