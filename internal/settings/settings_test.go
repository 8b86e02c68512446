package settings

import (
	"testing"
	"time"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, UnitBinary, d.UnitType)
	assert.Equal(t, 2*time.Second, d.RefreshInterval)
	assert.Equal(t, DisplayCard, d.DisplayMode)
	assert.False(t, d.ShowSummary)
	assert.False(t, d.ShowFilters)
	assert.True(t, d.ShowCPUChart)
	assert.Equal(t, history.Window1, d.CPUChartDuration)
	assert.Equal(t, i18n.ZhCN, d.Locale)
	assert.Equal(t, ThemeAuto, d.Theme)
	assert.Equal(t, ranking.Default, d.Sort())
	assert.NoError(t, d.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"bad unit", func(s *Settings) { s.UnitType = "metric" }, "unit_type"},
		{"bad interval", func(s *Settings) { s.RefreshInterval = 3 * time.Second }, "refresh_interval"},
		{"bad display", func(s *Settings) { s.DisplayMode = "grid" }, "display_mode"},
		{"bad chart window", func(s *Settings) { s.CPUChartDuration = 2 }, "cpu_chart_duration"},
		{"bad locale", func(s *Settings) { s.Locale = "fr-FR" }, "locale"},
		{"bad theme", func(s *Settings) { s.Theme = "solarized" }, "theme"},
		{"bad sort key", func(s *Settings) { s.SortKey = "ping" }, "sort_key"},
		{"bad direction", func(s *Settings) { s.SortDirection = "up" }, "sort_direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrSettings))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSettings_GetSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"unit_type", "decimal", "decimal"},
		{"refresh_interval", "5s", "5s"},
		{"refresh_interval", "10000", "10s"},
		{"display-mode", "row", "row"},
		{"show_summary", "yes", "true"},
		{"show_filters", "on", "true"},
		{"show_cpu_chart", "false", "false"},
		{"cpu_chart_duration", "3m", "3"},
		{"locale", "en-US", "en-US"},
		{"theme", "light", "light"},
		{"sort_key", "CPU", "cpu"},
		{"sort_direction", "asc", "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := Defaults()
			require.NoError(t, s.Set(tt.key, tt.value))
			got, err := s.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestSettings_SetErrors(t *testing.T) {
	s := Defaults()

	err := s.Set("colour", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown setting")

	assert.Error(t, s.Set("show_summary", "maybe"))
	assert.Error(t, s.Set("refresh_interval", "soon"))
	assert.Error(t, s.Set("cpu_chart_duration", "x"))
	assert.Error(t, s.Set("sort_key", "ping"))

	_, err = s.Get("nope")
	assert.Error(t, err)
}

func TestSettings_Pairs(t *testing.T) {
	pairs := Defaults().Pairs()
	require.Len(t, pairs, len(Keys()))
	assert.Equal(t, [2]string{"unit_type", "binary"}, pairs[0])
	assert.Equal(t, [2]string{"refresh_interval", "2s"}, pairs[1])
}

func TestNextTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, NextTheme(ThemeAuto))
	assert.Equal(t, ThemeLight, NextTheme(ThemeDark))
	assert.Equal(t, ThemeAuto, NextTheme(ThemeLight))
}
