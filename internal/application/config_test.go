package application

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "hackathon_state.json", cfg.Storage.Path)
	assert.Equal(t, "gemini-2.5-flash", cfg.Generator.Model)
	assert.Equal(t, 30*time.Second, cfg.Generator.Timeout())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
storage:
  path: /tmp/hackdash/state.json
generator:
  model: gemini-2.0-flash
  timeout_seconds: 10
  requests_per_minute: 3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hackdash/state.json", cfg.Storage.Path)
	assert.Equal(t, "gemini-2.0-flash", cfg.Generator.Model)
	assert.Equal(t, 10*time.Second, cfg.Generator.Timeout())
	assert.Equal(t, 3, cfg.Generator.RequestsPerMinute)
	assert.Equal(t, "test-key", cfg.Generator.APIKey, "key comes from the environment, not the file")
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  path: custom.json\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.Storage.Path)
	assert.Equal(t, DefaultConfig().Generator.Model, cfg.Generator.Model)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [not a map"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  path: \"\"\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err, "empty storage path must fail validation")
}
