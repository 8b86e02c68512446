package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FleetSummary holds host counts for summary rendering.
// This mirrors filter.Summary to keep ui free of domain imports.
type FleetSummary struct {
	Total        int
	Online       int
	Offline      int
	OfflineNames []string
}

// SummaryRenderer formats fleet summaries for terminal display.
type SummaryRenderer struct {
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	mutedStyle   lipgloss.Style
}

// NewSummaryRenderer creates a new summary renderer with default styles.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{
		errorStyle:   lipgloss.NewStyle().Foreground(ColorError),
		successStyle: lipgloss.NewStyle().Foreground(ColorSuccess),
		mutedStyle:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// RenderFleetSummary generates the footer printed under `statboard list`.
// An empty fleet renders as an empty string.
func RenderFleetSummary(summary FleetSummary) string {
	return NewSummaryRenderer().Render(summary)
}

// Render generates the formatted summary string.
func (r *SummaryRenderer) Render(summary FleetSummary) string {
	if summary.Total == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(r.successStyle.Render(fmt.Sprintf("%s %d online", SymbolSuccess, summary.Online)))
	sb.WriteString("  ")
	offline := fmt.Sprintf("%s %d offline", SymbolFail, summary.Offline)
	if summary.Offline > 0 {
		sb.WriteString(r.errorStyle.Render(offline))
	} else {
		sb.WriteString(r.mutedStyle.Render(offline))
	}

	hostWord := "host"
	if summary.Total != 1 {
		hostWord = "hosts"
	}
	sb.WriteString(r.mutedStyle.Render(fmt.Sprintf("  (%d %s)", summary.Total, hostWord)))
	sb.WriteString("\n")

	// One offline host per line, easier to scan than a comma list.
	for _, name := range summary.OfflineNames {
		sb.WriteString("    ")
		sb.WriteString(r.mutedStyle.Render(name))
		sb.WriteString("\n")
	}

	return sb.String()
}
