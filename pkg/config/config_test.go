package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 3, cfg.Relay.CodeWords)
	assert.Equal(t, 3, cfg.Security.LockoutThreshold)
	assert.NotEmpty(t, cfg.Device.Name)
	assert.Positive(t, cfg.ToastDuration())
	assert.Positive(t, cfg.LockoutBase())
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Relay.URL, cfg.Relay.URL)
}

func TestLoadFromMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
relay:
  url: wss://relay.example.net
security:
  lockoutThreshold: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "wss://relay.example.net", cfg.Relay.URL)
	assert.Equal(t, 5, cfg.Security.LockoutThreshold)
	// Untouched fields keep defaults
	assert.Equal(t, 10, cfg.Scan.MaxDepth)
}

func TestLoadFromRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("relay: ["), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestGuardedDurations(t *testing.T) {
	cfg := Default()
	cfg.UI.ToastSecs = 0
	cfg.Security.LockoutBaseSecs = -1
	assert.Positive(t, cfg.ToastDuration())
	assert.Positive(t, cfg.LockoutBase())
}
