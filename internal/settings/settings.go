// Package settings owns the user's display preferences.
//
// A Manager is constructed once and handed to whatever needs it. Reads return
// copies, writes go through Update so they are validated and persisted
// together, and subscribers are notified after every successful change.
package settings

import (
	"fmt"
	"slices"
	"time"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/ranking"
)

// UnitType selects binary (GiB) or decimal (GB) byte units.
type UnitType string

const (
	UnitBinary  UnitType = "binary"
	UnitDecimal UnitType = "decimal"
)

// DisplayMode selects the dashboard layout.
type DisplayMode string

const (
	DisplayCard DisplayMode = "card"
	DisplayRow  DisplayMode = "row"
)

// Theme selects the color palette. ThemeAuto follows the terminal background.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Themes lists themes in cycling order.
var Themes = []Theme{ThemeAuto, ThemeDark, ThemeLight}

// RefreshIntervals are the allowed poll intervals.
var RefreshIntervals = []time.Duration{time.Second, 2 * time.Second, 5 * time.Second, 10 * time.Second}

// Settings are the persisted display preferences.
type Settings struct {
	UnitType         UnitType          `yaml:"unit_type" json:"unit_type"`
	RefreshInterval  time.Duration     `yaml:"refresh_interval" json:"refresh_interval"`
	DisplayMode      DisplayMode       `yaml:"display_mode" json:"display_mode"`
	ShowSummary      bool              `yaml:"show_summary" json:"show_summary"`
	ShowFilters      bool              `yaml:"show_filters" json:"show_filters"`
	ShowCPUChart     bool              `yaml:"show_cpu_chart" json:"show_cpu_chart"`
	CPUChartDuration history.Window    `yaml:"cpu_chart_duration" json:"cpu_chart_duration"`
	Locale           i18n.Locale       `yaml:"locale" json:"locale"`
	Theme            Theme             `yaml:"theme" json:"theme"`
	SortKey          ranking.Key       `yaml:"sort_key" json:"sort_key"`
	SortDirection    ranking.Direction `yaml:"sort_direction" json:"sort_direction"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		UnitType:         UnitBinary,
		RefreshInterval:  2 * time.Second,
		DisplayMode:      DisplayCard,
		ShowSummary:      false,
		ShowFilters:      false,
		ShowCPUChart:     true,
		CPUChartDuration: history.Window1,
		Locale:           i18n.DefaultLocale,
		Theme:            ThemeAuto,
		SortKey:          ranking.KeyDefault,
		SortDirection:    ranking.Desc,
	}
}

// Sort returns the persisted sort choice.
func (s Settings) Sort() ranking.Spec {
	return ranking.Spec{Key: s.SortKey, Direction: s.SortDirection}
}

// Validate checks every field against its allowed values.
func (s Settings) Validate() error {
	if s.UnitType != UnitBinary && s.UnitType != UnitDecimal {
		return invalid("unit_type", string(s.UnitType), "binary, decimal")
	}
	if !slices.Contains(RefreshIntervals, s.RefreshInterval) {
		return invalid("refresh_interval", s.RefreshInterval.String(), "1s, 2s, 5s, 10s")
	}
	if s.DisplayMode != DisplayCard && s.DisplayMode != DisplayRow {
		return invalid("display_mode", string(s.DisplayMode), "card, row")
	}
	if !slices.Contains(history.Windows, s.CPUChartDuration) {
		return invalid("cpu_chart_duration", fmt.Sprint(int(s.CPUChartDuration)), "1, 3, 5")
	}
	if !s.Locale.Valid() {
		return invalid("locale", string(s.Locale), "zh-CN, zh-TW, en-US")
	}
	if !slices.Contains(Themes, s.Theme) {
		return invalid("theme", string(s.Theme), "auto, dark, light")
	}
	if !slices.Contains(ranking.Keys, s.SortKey) {
		return invalid("sort_key", string(s.SortKey), "default, name, location, cpu, memory, disk, uptime, load")
	}
	if s.SortDirection != ranking.Asc && s.SortDirection != ranking.Desc {
		return invalid("sort_direction", string(s.SortDirection), "asc, desc")
	}
	return nil
}

func invalid(field, value, allowed string) error {
	return errors.New(errors.ErrSettings,
		fmt.Sprintf("Invalid %s '%s'", field, value),
		"Use one of: "+allowed)
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	i := slices.Index(Themes, t)
	return Themes[(i+1)%len(Themes)]
}
