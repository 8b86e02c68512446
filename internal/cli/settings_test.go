package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishManager(t *testing.T) (*settings.Manager, *settings.MemoryStore) {
	t.Helper()
	store := settings.NewMemoryStore(nil)
	mgr := settings.NewManager(store, settings.WithLocaleDetector(func() i18n.Locale { return i18n.EnUS }))
	require.NoError(t, mgr.Load())
	return mgr, store
}

func TestSettingsGet(t *testing.T) {
	mgr, _ := englishManager(t)

	t.Run("single key", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, settingsGet(&buf, mgr, "refresh_interval"))
		assert.Equal(t, "2s\n", buf.String())
	})

	t.Run("key with dashes and caps", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, settingsGet(&buf, mgr, "Display-Mode"))
		assert.Equal(t, "card\n", buf.String())
	})

	t.Run("all keys as a table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, settingsGet(&buf, mgr, ""))
		out := buf.String()
		assert.Contains(t, out, "Setting")
		assert.Contains(t, out, "Value")
		for _, key := range settings.Keys() {
			assert.Contains(t, out, key)
		}
		assert.Contains(t, out, "en-US")
	})

	t.Run("unknown key", func(t *testing.T) {
		var buf bytes.Buffer
		err := settingsGet(&buf, mgr, "colour")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrSettings))
		assert.Contains(t, err.Error(), "Unknown setting 'colour'")
		assert.Empty(t, buf.String())
	})
}

func TestSettingsGet_JSON(t *testing.T) {
	setupTestEnv(t)
	machineMode = true
	mgr, _ := englishManager(t)

	var buf bytes.Buffer
	require.NoError(t, settingsGet(&buf, mgr, ""))

	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Len(t, env.Data, len(settings.Keys()))
	assert.Equal(t, "default", env.Data["sort_key"])
	assert.Equal(t, "true", env.Data["show_cpu_chart"])
}

func TestSettingsSet(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		wantOut  string
		wantCode string
	}{
		{name: "interval", key: "refresh_interval", value: "5s", wantOut: "refresh_interval = 5s"},
		{name: "interval in milliseconds", key: "refresh_interval", value: "10000", wantOut: "refresh_interval = 10s"},
		{name: "boolean alias", key: "show_summary", value: "on", wantOut: "show_summary = true"},
		{name: "chart window with suffix", key: "cpu_chart_duration", value: "3m", wantOut: "cpu_chart_duration = 3"},
		{name: "sort key case-insensitive", key: "sort_key", value: "CPU", wantOut: "sort_key = cpu"},
		{name: "locale", key: "locale", value: "zh-TW", wantOut: "locale = zh-TW"},
		{name: "disallowed interval", key: "refresh_interval", value: "7s", wantCode: errors.ErrSettings},
		{name: "bad boolean", key: "show_filters", value: "maybe", wantCode: errors.ErrSettings},
		{name: "unknown locale", key: "locale", value: "fr-FR", wantCode: errors.ErrSettings},
		{name: "unknown key", key: "colour", value: "red", wantCode: errors.ErrSettings},
		{name: "bad sort key", key: "sort_key", value: "colour", wantCode: errors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, store := englishManager(t)
			before := store.Saves()

			var buf bytes.Buffer
			err := settingsSet(&buf, mgr, tt.key, tt.value)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
				assert.Equal(t, before, store.Saves(), "rejected values are not saved")
				return
			}

			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.wantOut)
			assert.Equal(t, before+1, store.Saves())
		})
	}
}

func TestSettingsReset(t *testing.T) {
	mgr, _ := englishManager(t)
	require.NoError(t, mgr.Set("display_mode", "row"))
	require.NoError(t, mgr.Set("theme", "light"))

	var buf bytes.Buffer
	require.NoError(t, settingsReset(&buf, mgr))

	assert.Contains(t, buf.String(), "Settings restored to defaults")
	got := mgr.Get()
	assert.Equal(t, settings.DisplayCard, got.DisplayMode)
	assert.Equal(t, settings.ThemeAuto, got.Theme)
	assert.Equal(t, i18n.EnUS, got.Locale, "reset keeps the language")
}

func TestSettingsReset_JSONPrintsSettings(t *testing.T) {
	setupTestEnv(t)
	machineMode = true
	mgr, _ := englishManager(t)

	var buf bytes.Buffer
	require.NoError(t, settingsReset(&buf, mgr))
	assert.Contains(t, buf.String(), `"display_mode": "card"`)
}

func TestSettingsPath(t *testing.T) {
	setupTestEnv(t)
	store := settings.NewFileStore("/tmp/statboard/settings.yaml")

	var buf bytes.Buffer
	require.NoError(t, settingsPath(&buf, store))
	assert.Equal(t, "/tmp/statboard/settings.yaml\n", buf.String())

	machineMode = true
	buf.Reset()
	require.NoError(t, settingsPath(&buf, store))
	assert.Contains(t, buf.String(), `"path": "/tmp/statboard/settings.yaml"`)
}

func TestSettingsEdit_RequiresTerminal(t *testing.T) {
	setupTestEnv(t)
	machineMode = true
	mgr, _ := englishManager(t)

	err := settingsEdit(&bytes.Buffer{}, mgr)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSettings))
	assert.Contains(t, err.Error(), "settings set")
}

func TestSettingsForm(t *testing.T) {
	s := settings.Defaults()
	assert.NotNil(t, settingsForm(&s))
}

func TestWithSettings_FirstRunWritesFile(t *testing.T) {
	home := setupTestEnv(t)
	path := filepath.Join(home, "prefs.yaml")
	writeConfig(t, home, "settings_file: "+path+"\n")

	var gotPath string
	var got settings.Settings
	err := withSettings(func(mgr *settings.Manager, store *settings.FileStore) error {
		gotPath = store.Path()
		got = mgr.Get()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, path, gotPath)
	assert.Equal(t, i18n.EnUS, got.Locale, "locale detected from LANG on first run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "locale: en-US")
}

func TestWithSettings_CorruptFileFallsBack(t *testing.T) {
	home := setupTestEnv(t)
	path := filepath.Join(home, "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_interval: [\n"), 0o644))
	writeConfig(t, home, "settings_file: "+path+"\n")
	machineMode = true

	err := withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
		assert.Equal(t, settings.Defaults(), mgr.Get())
		return nil
	})
	require.NoError(t, err)
}

func TestSettingsSetThenGetRoundTrip(t *testing.T) {
	home := setupTestEnv(t)
	writeConfig(t, home, "settings_file: "+filepath.Join(home, "prefs.yaml")+"\n")

	require.NoError(t, withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
		return settingsSet(&bytes.Buffer{}, mgr, "unit_type", "decimal")
	}))

	var buf bytes.Buffer
	require.NoError(t, withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
		return settingsGet(&buf, mgr, "unit_type")
	}))
	assert.Equal(t, "decimal", strings.TrimSpace(buf.String()))
}
