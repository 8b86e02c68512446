package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/ranking"
)

// field maps a settings key to string accessors for the CLI.
type field struct {
	key string
	get func(Settings) string
	set func(*Settings, string) error
}

var fields = []field{
	{
		key: "unit_type",
		get: func(s Settings) string { return string(s.UnitType) },
		set: func(s *Settings, v string) error { s.UnitType = UnitType(v); return nil },
	},
	{
		key: "refresh_interval",
		get: func(s Settings) string { return s.RefreshInterval.String() },
		set: func(s *Settings, v string) error {
			d, err := parseInterval(v)
			if err != nil {
				return err
			}
			s.RefreshInterval = d
			return nil
		},
	},
	{
		key: "display_mode",
		get: func(s Settings) string { return string(s.DisplayMode) },
		set: func(s *Settings, v string) error { s.DisplayMode = DisplayMode(v); return nil },
	},
	{
		key: "show_summary",
		get: func(s Settings) string { return strconv.FormatBool(s.ShowSummary) },
		set: func(s *Settings, v string) error { return parseBool(v, &s.ShowSummary) },
	},
	{
		key: "show_filters",
		get: func(s Settings) string { return strconv.FormatBool(s.ShowFilters) },
		set: func(s *Settings, v string) error { return parseBool(v, &s.ShowFilters) },
	},
	{
		key: "show_cpu_chart",
		get: func(s Settings) string { return strconv.FormatBool(s.ShowCPUChart) },
		set: func(s *Settings, v string) error { return parseBool(v, &s.ShowCPUChart) },
	},
	{
		key: "cpu_chart_duration",
		get: func(s Settings) string { return strconv.Itoa(int(s.CPUChartDuration)) },
		set: func(s *Settings, v string) error {
			n, err := strconv.Atoi(strings.TrimSuffix(v, "m"))
			if err != nil {
				return invalid("cpu_chart_duration", v, "1, 3, 5")
			}
			s.CPUChartDuration = history.Window(n)
			return nil
		},
	},
	{
		key: "locale",
		get: func(s Settings) string { return string(s.Locale) },
		set: func(s *Settings, v string) error { s.Locale = i18n.Locale(v); return nil },
	},
	{
		key: "theme",
		get: func(s Settings) string { return string(s.Theme) },
		set: func(s *Settings, v string) error { s.Theme = Theme(v); return nil },
	},
	{
		key: "sort_key",
		get: func(s Settings) string { return string(s.SortKey) },
		set: func(s *Settings, v string) error {
			k, err := ranking.ParseKey(v)
			if err != nil {
				return err
			}
			s.SortKey = k
			return nil
		},
	},
	{
		key: "sort_direction",
		get: func(s Settings) string { return string(s.SortDirection) },
		set: func(s *Settings, v string) error {
			d, err := ranking.ParseDirection(v)
			if err != nil {
				return err
			}
			s.SortDirection = d
			return nil
		},
	},
}

// Keys returns every settings key in display order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

func lookup(key string) (field, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
	for _, f := range fields {
		if f.key == normalized {
			return f, nil
		}
	}
	return field{}, errors.New(errors.ErrSettings,
		fmt.Sprintf("Unknown setting '%s'", key),
		"Valid settings: "+strings.Join(Keys(), ", "))
}

// Get returns one setting as a string.
func (s Settings) Get(key string) (string, error) {
	f, err := lookup(key)
	if err != nil {
		return "", err
	}
	return f.get(s), nil
}

// Set parses value into the named setting. The result is not validated;
// Manager.Set validates before saving.
func (s *Settings) Set(key, value string) error {
	f, err := lookup(key)
	if err != nil {
		return err
	}
	return f.set(s, strings.TrimSpace(value))
}

// Pairs returns every setting as key/value strings in display order.
func (s Settings) Pairs() [][2]string {
	out := make([][2]string, len(fields))
	for i, f := range fields {
		out[i] = [2]string{f.key, f.get(s)}
	}
	return out
}

// parseInterval accepts durations ("5s") or bare milliseconds ("5000").
func parseInterval(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, invalid("refresh_interval", v, "1s, 2s, 5s, 10s")
	}
	return d, nil
}

func parseBool(v string, dst *bool) error {
	switch strings.ToLower(v) {
	case "on", "yes":
		*dst = true
		return nil
	case "off", "no":
		*dst = false
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.New(errors.ErrSettings,
			fmt.Sprintf("'%s' is not a boolean", v),
			"Use true or false")
	}
	*dst = b
	return nil
}
