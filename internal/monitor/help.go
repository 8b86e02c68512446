package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry. Desc is a
// message key, translated when the overlay renders.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Ctrl+C", Desc: "help.quit"},
	{Key: "r", Desc: "help.refresh"},
	{Key: "s", Desc: "help.sort"},
	{Key: "d", Desc: "help.direction"},
	{Key: "w", Desc: "help.window"},
	{Key: "c", Desc: "help.chart"},
	{Key: "u", Desc: "help.units"},
	{Key: "T", Desc: "help.theme"},
	{Key: "l", Desc: "help.locale"},
	{Key: "v", Desc: "help.display"},
	{Key: "S", Desc: "help.summary"},
	{Key: "f", Desc: "help.filters"},
	{Key: "o", Desc: "help.status"},
	{Key: "L", Desc: "help.location"},
	{Key: "t", Desc: "help.type"},
	{Key: "↑↓←→ / jk", Desc: "help.navigate"},
	{Key: "Enter", Desc: "help.detail"},
	{Key: "Esc", Desc: "help.back"},
	{Key: "?", Desc: "help.help"},
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	p := m.styles.Palette
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Background(p.Surface).
		Padding(1, 2)
	keyStyle := lipgloss.NewStyle().Foreground(p.TextPrimary).Bold(true).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(p.TextSecondary)

	lines := []string{m.styles.Title.Render(m.tr.T("help.title")), ""}
	for _, b := range helpBindings {
		lines = append(lines, keyStyle.Render(b.Key)+descStyle.Render(m.tr.T(b.Desc)))
	}
	lines = append(lines, "", m.styles.Label.Render(m.tr.T("help.close")))

	content := box.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(p.Background),
	)
}
