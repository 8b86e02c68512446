package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo feeds the banner printed by `statboard version`. Empty
// Tagline and Endpoint lines are left out.
type HeaderInfo struct {
	Version  string
	Tagline  string
	Endpoint string
}

// HeaderWidth is how many columns the rule under the banner spans.
const HeaderWidth = 50

// RenderHeader returns the banner: name and build on one line, then the
// optional tagline and endpoint, then a rule. Every line ends in "\n".
func RenderHeader(info HeaderInfo) string {
	name := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true).Render("statboard")
	build := lipgloss.NewStyle().Foreground(ColorNeonCyan).Render(info.Version)

	lines := []string{name + " " + build}
	if info.Tagline != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorSecondary).Render(info.Tagline))
	}
	if info.Endpoint != "" {
		lines = append(lines, MutedStyle().Render(info.Endpoint))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(ColorGlassBorder).Render(strings.Repeat("━", HeaderWidth)))

	return strings.Join(lines, "\n") + "\n"
}

// PrintHeader writes RenderHeader(info) to w.
func PrintHeader(w io.Writer, info HeaderInfo) {
	fmt.Fprint(w, RenderHeader(info))
}
