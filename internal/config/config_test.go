package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, "/json/stats.json", cfg.StatsPath)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "curl", cfg.Install.Downloader)
	assert.True(t, cfg.Install.Sudo)
	assert.Equal(t, 60, cfg.Monitor.Thresholds.CPU.Warning)
	assert.Equal(t, 80, cfg.Monitor.Thresholds.CPU.Critical)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
endpoint: https://status.example.com/
timeout: 3s
settings_file: /tmp/statboard-settings.yaml
install:
  downloader: wget
  sudo: false
monitor:
  thresholds:
    cpu:
      warning: 50
      critical: 75
output:
  color: never
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://status.example.com/", cfg.Endpoint)
	assert.Equal(t, "https://status.example.com/json/stats.json", cfg.StatsURL())
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/statboard-settings.yaml", cfg.SettingsFile)
	assert.Equal(t, "wget", cfg.Install.Downloader)
	assert.False(t, cfg.Install.Sudo)
	assert.Equal(t, 50, cfg.Monitor.Thresholds.CPU.Warning)
	assert.Equal(t, 75, cfg.Monitor.Thresholds.CPU.Critical)
	// Untouched nested values keep defaults.
	assert.Equal(t, 70, cfg.Monitor.Thresholds.RAM.Warning)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STATBOARD_ENDPOINT", "http://10.0.0.5:8080")
	t.Setenv("STATBOARD_TIMEOUT", "250ms")
	t.Setenv("STATBOARD_INSTALL_DOWNLOADER", "wget")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:8080", cfg.Endpoint)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "wget", cfg.Install.Downloader)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("endpoint: [unclosed"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestFind(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("endpoint: http://x\n"), 0644))

		found, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("endpoint: http://x\n"), 0644))
		t.Chdir(dir)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, ConfigFileName, filepath.Base(found))
	})

	t.Run("global config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())
		globalDir := filepath.Join(home, GlobalConfigDir)
		require.NoError(t, os.MkdirAll(globalDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, GlobalConfigFile), []byte("endpoint: http://x\n"), 0644))

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(globalDir, GlobalConfigFile), found)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		found, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestInstallBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoint = "https://status.example.com"
	assert.Equal(t, "https://status.example.com", cfg.InstallBaseURL())

	cfg.Install.BaseURL = "https://agent.example.com"
	assert.Equal(t, "https://agent.example.com", cfg.InstallBaseURL())
}
