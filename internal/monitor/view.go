package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/filter"
	"github.com/rileyhilliard/statboard/internal/format"
	"github.com/rileyhilliard/statboard/internal/settings"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	if !m.loaded {
		sections = append(sections, "", m.renderLoading(), "", m.renderFooter())
		return strings.Join(sections, "\n")
	}

	if m.err != nil {
		sections = append(sections, m.renderBanner())
	}
	if m.prefs.ShowSummary {
		sections = append(sections, m.renderSummary())
	}
	if m.prefs.ShowFilters {
		sections = append(sections, m.renderFilterBar())
	}
	sections = append(sections, "")

	footer := m.renderFooter()
	used := lipgloss.Height(strings.Join(sections, "\n")) + lipgloss.Height(footer) + 1
	sections = append(sections, m.renderBody(m.height-used), footer)

	return strings.Join(sections, "\n")
}

// renderHeader renders the title line with counts, sort and update time.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render(m.tr.T("dashboard.title"))

	parts := []string{
		m.tr.Tf("dashboard.hosts", len(m.hosts)),
		m.tr.Tf("dashboard.online", m.OnlineCount()),
		m.sortLabel(),
	}
	if m.prefs.ShowCPUChart {
		parts = append(parts, m.tr.Tf("chart.window", int(m.prefs.CPUChartDuration)))
	}
	if m.loaded {
		updated := m.updated
		if updated.IsZero() {
			updated = m.fetchedAt
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)",
			m.tr.T("dashboard.updated"),
			m.fmt.Ago(updated, m.now()),
			updated.Format(format.TimestampLayout)))
	}

	return m.styles.Header.Render(title + m.styles.Label.Render(" | "+strings.Join(parts, " | ")))
}

// sortLabel renders the active sort key and direction.
func (m Model) sortLabel() string {
	spec := m.prefs.Sort()
	return fmt.Sprintf("%s: %s %s", m.tr.T("sort.label"), m.tr.T("sort."+string(spec.Key)), spec.Direction.Arrow())
}

// renderLoading renders the first-load spinner, or the full error screen
// when the first poll failed.
func (m Model) renderLoading() string {
	if m.err == nil {
		return "  " + m.spinner.View() + " " + m.styles.Label.Render(m.tr.T("dashboard.loading"))
	}
	return strings.Join([]string{
		m.styles.Banner.Render("✗ " + m.tr.T("dashboard.fetchError")),
		"  " + m.styles.Muted.Render(errors.Summary(m.err)),
		"",
		"  " + m.styles.Label.Render(m.tr.T("dashboard.retryHint")),
	}, "\n")
}

// renderBanner renders the refresh-failed notice shown above stale data.
func (m Model) renderBanner() string {
	return m.styles.Banner.Render("⚠ "+m.tr.T("dashboard.refreshFailed")) +
		m.styles.Muted.Render("  "+errors.Summary(m.err))
}

// sectionWidth is the width of full-width panels.
func (m Model) sectionWidth() int {
	w := m.width - 2
	if w <= 0 {
		w = 80
	}
	if w > BreakpointStandard {
		w = BreakpointStandard
	}
	return w
}

// renderSummary renders the total/online/offline panel.
func (m Model) renderSummary() string {
	s := filter.Summarize(m.hosts)
	width := m.sectionWidth()

	counts := fmt.Sprintf("%s %s   %s %s",
		m.tr.T("summary.online"), m.styles.Online.Render(fmt.Sprint(s.Online)),
		m.tr.T("summary.offline"), m.styles.Offline.Render(fmt.Sprint(s.Offline)))

	lines := []string{
		m.styles.SectionHeader(m.tr.T("summary.total"), fmt.Sprint(s.Total), width),
		m.styles.SectionLine(counts, width),
	}
	if len(s.OfflineNames) > 0 {
		names := truncate(strings.Join(s.OfflineNames, ", "), width-8-lipgloss.Width(m.tr.T("summary.offlineHosts")))
		lines = append(lines, m.styles.SectionLine(
			m.styles.Label.Render(m.tr.T("summary.offlineHosts")+": ")+m.styles.Offline.Render(names), width))
	}
	lines = append(lines, m.styles.SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderFilterBar renders the active status, location and type filters.
func (m Model) renderFilterBar() string {
	all := m.tr.T("filters.all")

	status := all
	if m.criteria.Status != filter.StatusAll && m.criteria.Status != "" {
		status = m.tr.T("status." + string(m.criteria.Status))
	}
	location := all
	if m.criteria.Location != "" {
		location = m.criteria.Location
	}
	kind := all
	if m.criteria.Type != "" {
		kind = strings.ToUpper(m.criteria.Type)
	}

	item := func(key, name, value string, active bool) string {
		v := m.styles.Value.Render(value)
		if active {
			v = m.styles.RowSelected.Render(value)
		}
		return m.styles.Muted.Render("["+key+"] ") + m.styles.Label.Render(name+": ") + v
	}

	return " " + strings.Join([]string{
		item(KeyCycleStatus, m.tr.T("filters.status"), status, status != all),
		item(KeyCycleLocation, m.tr.T("filters.location"), location, m.criteria.Location != ""),
		item(KeyCycleType, m.tr.T("filters.type"), kind, m.criteria.Type != ""),
	}, "   ")
}

// renderBody renders the host cards or rows, windowed so the selected host
// stays on screen within avail lines. avail <= 0 renders everything.
func (m Model) renderBody(avail int) string {
	if len(m.visible) == 0 {
		return "  " + m.styles.Label.Render(m.tr.T("dashboard.noServers"))
	}

	if m.prefs.DisplayMode == settings.DisplayRow {
		return m.renderRows(avail)
	}
	return m.renderCards(avail)
}

// renderCards arranges cards in a grid.
func (m Model) renderCards(avail int) string {
	width := m.calculateCardWidth()
	perRow := m.cardsPerRow()

	var rows []string
	var heights []int
	for i := 0; i < len(m.visible); i += perRow {
		end := i + perRow
		if end > len(m.visible) {
			end = len(m.visible)
		}
		cards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			cards = append(cards, m.renderCard(m.visible[j], width, j == m.selected))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rows = append(rows, row)
		heights = append(heights, lipgloss.Height(row))
	}

	start, end := windowAround(heights, m.selected/perRow, avail)
	return lipgloss.JoinVertical(lipgloss.Left, rows[start:end]...)
}

// renderRows renders one line per host under a header.
func (m Model) renderRows(avail int) string {
	lines := make([]string, len(m.visible))
	heights := make([]int, len(m.visible))
	for i, h := range m.visible {
		lines[i] = m.renderRow(h, i == m.selected)
		heights[i] = 1
	}

	if avail > 0 {
		avail--
	}
	start, end := windowAround(heights, m.selected, avail)
	return " " + m.renderRowHeader() + "\n" + strings.Join(lines[start:end], "\n")
}

// windowAround returns the [start, end) range of items, each heights[i]
// lines tall, that fits in avail lines and contains sel.
func windowAround(heights []int, sel, avail int) (int, int) {
	if len(heights) == 0 {
		return 0, 0
	}
	if avail <= 0 {
		return 0, len(heights)
	}
	if sel < 0 {
		sel = 0
	}
	if sel >= len(heights) {
		sel = len(heights) - 1
	}

	start, end := sel, sel+1
	used := heights[sel]
	for {
		grew := false
		if end < len(heights) && used+heights[end] <= avail {
			used += heights[end]
			end++
			grew = true
		}
		if start > 0 && used+heights[start-1] <= avail {
			start--
			used += heights[start]
			grew = true
		}
		if !grew {
			return start, end
		}
	}
}

// renderFooter renders the keyboard hint line.
func (m Model) renderFooter() string {
	hints := []string{
		"q " + m.tr.T("help.quit"),
		"r " + m.tr.T("help.refresh"),
		"s/d " + m.tr.T("sort.label"),
		"v " + m.tr.T("display."+string(m.prefs.DisplayMode)),
		"↑↓ " + m.tr.T("help.navigate"),
		"? " + m.tr.T("help.help"),
	}
	return m.styles.Footer.Render(strings.Join(hints, " | "))
}
