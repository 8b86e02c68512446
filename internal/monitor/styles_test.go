package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/settings"
	"github.com/stretchr/testify/assert"
)

func TestResolvePalette(t *testing.T) {
	tests := []struct {
		name   string
		theme  settings.Theme
		dark   bool
		expect string
	}{
		{"auto on dark terminal", settings.ThemeAuto, true, "dark"},
		{"auto on light terminal", settings.ThemeAuto, false, "light"},
		{"dark ignores terminal", settings.ThemeDark, false, "dark"},
		{"light ignores terminal", settings.ThemeLight, true, "light"},
		{"unknown follows terminal", settings.Theme("neon"), true, "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ResolvePalette(tt.theme, tt.dark).Name)
		})
	}
}

func TestMetricColor(t *testing.T) {
	s := NewStyles(DarkPalette)
	threshold := config.MetricThreshold{Warning: 70, Critical: 90}

	tests := []struct {
		name    string
		percent float64
		expect  lipgloss.Color
	}{
		{"healthy low", 0.0, DarkPalette.Healthy},
		{"healthy near threshold", 69.9, DarkPalette.Healthy},
		{"warning at threshold", 70.0, DarkPalette.Warning},
		{"warning near critical", 89.9, DarkPalette.Warning},
		{"critical at threshold", 90.0, DarkPalette.Critical},
		{"critical max", 100.0, DarkPalette.Critical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, s.MetricColor(tt.percent, threshold))
		})
	}
}

func TestMetricColorWithThresholds(t *testing.T) {
	s := NewStyles(LightPalette)
	threshold := config.MetricThreshold{Warning: 50, Critical: 80}

	assert.Equal(t, LightPalette.Healthy, s.MetricColor(40, threshold))
	assert.Equal(t, LightPalette.Warning, s.MetricColor(60, threshold))
	assert.Equal(t, LightPalette.Critical, s.MetricColor(85, threshold))
}

func TestBar(t *testing.T) {
	s := NewStyles(DarkPalette)
	threshold := config.MetricThreshold{Warning: 70, Critical: 90}

	tests := []struct {
		name       string
		width      int
		percent    float64
		wantFilled int
		wantWidth  int
	}{
		{"empty", 10, 0, 0, 10},
		{"half", 10, 50, 5, 10},
		{"full", 10, 100, 10, 10},
		{"over 100 clamps", 10, 150, 10, 10},
		{"negative clamps", 10, -5, 0, 10},
		{"zero width becomes one", 0, 100, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := s.Bar(tt.width, tt.percent, threshold)
			assert.Equal(t, tt.wantWidth, lipgloss.Width(bar))
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "▰"))
		})
	}
}

func TestSectionHeader(t *testing.T) {
	s := NewStyles(DarkPalette)

	tests := []struct {
		name  string
		title string
		value string
		width int
	}{
		{"normal width", "CPU", "75%", 50},
		{"narrow width", "RAM", "50%", 15},
		{"minimum width", "A", "B", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SectionHeader(tt.title, tt.value, tt.width)
			assert.Contains(t, result, "╭─")
			assert.Contains(t, result, "╮")
			assert.Contains(t, result, tt.title)
			assert.Contains(t, result, tt.value)
		})
	}

	assert.Equal(t, 50, lipgloss.Width(s.SectionHeader("CPU", "75%", 50)))
}

func TestSectionFooter(t *testing.T) {
	s := NewStyles(DarkPalette)

	for _, width := range []int{50, 10, 2, 1} {
		result := s.SectionFooter(width)
		assert.Contains(t, result, "╰")
		assert.Contains(t, result, "╯")
	}
	assert.Equal(t, 30, lipgloss.Width(s.SectionFooter(30)))
}

func TestSectionLine(t *testing.T) {
	s := NewStyles(DarkPalette)

	tests := []struct {
		name    string
		content string
		width   int
	}{
		{"normal content", "Hello World", 40},
		{"empty content", "", 20},
		{"overflowing content", "a long line of text", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SectionLine(tt.content, tt.width)
			assert.Equal(t, 2, strings.Count(result, "│"))
			assert.Contains(t, result, tt.content)
		})
	}

	assert.Equal(t, 40, lipgloss.Width(s.SectionLine("Hello", 40)))
}

func TestSpreadAndPad(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))

	assert.Equal(t, "left    right", spread("left", "right", 13))
	assert.Equal(t, "left right", spread("left", "right", 3), "keeps one space when too narrow")
}

func TestStatusIndicatorConstants(t *testing.T) {
	assert.Equal(t, "◉", StatusOnline)
	assert.Equal(t, "◌", StatusOffline)
}

func TestPalettesComplete(t *testing.T) {
	for _, p := range []Palette{DarkPalette, LightPalette} {
		t.Run(p.Name, func(t *testing.T) {
			for _, c := range []lipgloss.Color{
				p.Background, p.Surface, p.Border,
				p.Healthy, p.Warning, p.Critical,
				p.TextPrimary, p.TextSecondary, p.TextMuted,
				p.Accent, p.AccentDim, p.Graph,
			} {
				assert.NotEmpty(t, string(c))
			}
		})
	}
}
