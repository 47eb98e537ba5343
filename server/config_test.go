package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadConfigRoundTripsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("OnlineMode = false\nViewDistance = 16\n\n[Listen]\nAddress = \"127.0.0.1:25566\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.OnlineMode)
	require.EqualValues(t, 16, cfg.ViewDistance)
	require.Equal(t, "127.0.0.1:25566", cfg.Listen.Address)
}

func TestLoadConfigFillsMissingFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("OnlineMode = false\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.OnlineMode)
	require.Equal(t, defaultConfig().Listen.Address, cfg.Listen.Address)
	require.Equal(t, defaultConfig().ViewDistance, cfg.ViewDistance)
}
