package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/settings"
)

// Palette is the set of colors one theme renders with.
type Palette struct {
	Name string

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	Healthy  lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	Accent    lipgloss.Color
	AccentDim lipgloss.Color
	Graph     lipgloss.Color
}

// DarkPalette is the neon synthwave palette.
var DarkPalette = Palette{
	Name:          "dark",
	Background:    lipgloss.Color("#0A0A0F"), // Deep void
	Surface:       lipgloss.Color("#12121A"),
	Border:        lipgloss.Color("#2A2A4A"), // Glass border (purple tint)
	Healthy:       lipgloss.Color("#39FF14"), // Neon green
	Warning:       lipgloss.Color("#FFAA00"), // Electric amber
	Critical:      lipgloss.Color("#FF0055"), // Hot red-pink
	TextPrimary:   lipgloss.Color("#FFFFFF"),
	TextSecondary: lipgloss.Color("#B4B4D0"), // Lavender gray
	TextMuted:     lipgloss.Color("#6B6B8D"),
	Accent:        lipgloss.Color("#FF2E97"), // Neon pink
	AccentDim:     lipgloss.Color("#BF40FF"),
	Graph:         lipgloss.Color("#00FFFF"),
}

// LightPalette keeps the same hues at contrast that reads on white.
var LightPalette = Palette{
	Name:          "light",
	Background:    lipgloss.Color("#FAFAFC"),
	Surface:       lipgloss.Color("#F0F0F5"),
	Border:        lipgloss.Color("#C8C8DC"),
	Healthy:       lipgloss.Color("#16A34A"),
	Warning:       lipgloss.Color("#D97706"),
	Critical:      lipgloss.Color("#DC2626"),
	TextPrimary:   lipgloss.Color("#111827"),
	TextSecondary: lipgloss.Color("#4B5563"),
	TextMuted:     lipgloss.Color("#9CA3AF"),
	Accent:        lipgloss.Color("#DB2777"),
	AccentDim:     lipgloss.Color("#7C3AED"),
	Graph:         lipgloss.Color("#0891B2"),
}

// ResolvePalette picks the palette for a theme. darkBackground is only
// consulted for ThemeAuto.
func ResolvePalette(theme settings.Theme, darkBackground bool) Palette {
	switch theme {
	case settings.ThemeDark:
		return DarkPalette
	case settings.ThemeLight:
		return LightPalette
	}
	if darkBackground {
		return DarkPalette
	}
	return LightPalette
}

// Styles are the lipgloss styles derived from one palette.
type Styles struct {
	Palette Palette

	Header       lipgloss.Style
	Title        lipgloss.Style
	Footer       lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	HostName     lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Muted        lipgloss.Style
	Online       lipgloss.Style
	Offline      lipgloss.Style
	Badge        lipgloss.Style
	BadgeOff     lipgloss.Style
	Banner       lipgloss.Style
	RowSelected  lipgloss.Style
	Divider      lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginRight(1)

	return Styles{
		Palette: p,
		Header: lipgloss.NewStyle().
			Foreground(p.TextPrimary).
			Bold(true).
			Padding(0, 1),
		Title:        lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Footer:       lipgloss.NewStyle().Foreground(p.TextMuted).Padding(0, 1),
		Card:         card,
		CardSelected: card.BorderForeground(p.Accent),
		HostName:     lipgloss.NewStyle().Foreground(p.TextPrimary).Bold(true),
		Label:        lipgloss.NewStyle().Foreground(p.TextSecondary),
		Value:        lipgloss.NewStyle().Foreground(p.TextPrimary),
		Muted:        lipgloss.NewStyle().Foreground(p.TextMuted),
		Online:       lipgloss.NewStyle().Foreground(p.Healthy),
		Offline:      lipgloss.NewStyle().Foreground(p.Critical),
		Badge:        lipgloss.NewStyle().Foreground(p.Graph),
		BadgeOff:     lipgloss.NewStyle().Foreground(p.Critical),
		Banner: lipgloss.NewStyle().
			Foreground(p.Critical).
			Bold(true).
			Padding(0, 1),
		RowSelected: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Divider:     lipgloss.NewStyle().Foreground(p.Border),
	}
}

// Status indicator glyphs
const (
	StatusOnline  = "◉"
	StatusOffline = "◌"
	BadgeDown     = "✗"
)

// MetricColor returns the palette color for a percentage against a
// warning/critical threshold pair.
func (s Styles) MetricColor(percent float64, t config.MetricThreshold) lipgloss.Color {
	switch {
	case percent >= float64(t.Critical):
		return s.Palette.Critical
	case percent >= float64(t.Warning):
		return s.Palette.Warning
	default:
		return s.Palette.Healthy
	}
}

// Bar renders a bracketless progress bar colored by threshold.
func (s Styles) Bar(width int, percent float64, t config.MetricThreshold) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
	return lipgloss.NewStyle().Foreground(s.MetricColor(percent, t)).Render(bar)
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func (s Styles) SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	border := lipgloss.NewStyle().Foreground(s.Palette.Border)
	valueStyle := lipgloss.NewStyle().Foreground(s.Palette.Graph).Bold(true)

	return border.Render("╭─ ") +
		s.Title.Render(title) +
		border.Render(" "+strings.Repeat("─", fillWidth)+" ") +
		valueStyle.Render(value) +
		border.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
func (s Styles) SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}
	return s.Divider.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionLine renders a content line with left and right borders, padded to width.
func (s Styles) SectionLine(content string, width int) string {
	if width < 4 {
		width = 4
	}
	padding := width - 4 - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}
	return s.Divider.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + s.Divider.Render("│")
}

// padRight pads s with spaces to width visible columns.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
