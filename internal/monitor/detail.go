package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/format"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/stats"
)

// detailChartHeight is the braille chart height in the detail view.
const detailChartHeight = 8

// renderDetailView renders the expanded single-host detail view.
func (m Model) renderDetailView() string {
	h, ok := m.SelectedHost()
	if !ok {
		return m.styles.Label.Render(m.tr.T("dashboard.noServers"))
	}

	width := m.detailWidth()
	header := strings.Join([]string{
		spread(m.renderHostTitle(h), m.styles.Muted.Render(h.Location), width),
		m.renderDetailSubtitle(h, width),
		m.styles.Divider.Render(strings.Repeat("─", width)),
	}, "\n")

	body := m.detailContent(h)
	if m.viewportReady {
		body = m.detailViewport.View()
	}

	footer := m.styles.Footer.Render(strings.Join([]string{
		"esc " + m.tr.T("help.back"),
		"↑↓ scroll",
		"r " + m.tr.T("help.refresh"),
		"q " + m.tr.T("help.quit"),
	}, " | "))

	return header + "\n" + body + "\n\n" + footer
}

// renderDetailSubtitle shows identity fields that do not fit on a card.
func (m Model) renderDetailSubtitle(h stats.HostStatus, width int) string {
	parts := []string{h.Name}
	if h.Host != "" {
		parts = append(parts, h.Host)
	}
	if h.GID != "" {
		parts = append(parts, "gid "+h.GID)
	}
	parts = append(parts, fmt.Sprintf("weight %d", h.Weight))
	if m.err != nil {
		parts = append(parts, m.tr.T("dashboard.refreshFailed"))
	}
	return truncateLine(m.styles.Muted.Render(strings.Join(parts, " · ")), width)
}

// detailWidth is the content width of the detail view.
func (m Model) detailWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	if w > BreakpointStandard {
		w = BreakpointStandard
	}
	return w
}

// updateDetailViewportContent refreshes the viewport with the selected
// host's detail content.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	h, ok := m.SelectedHost()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.detailContent(h))
}

// detailContent renders every section of the host record.
func (m Model) detailContent(h stats.HostStatus) string {
	width := m.detailWidth()
	sections := []string{
		m.renderDetailCPUSection(h, width),
		m.renderDetailResourceSection(h, width),
		m.renderDetailNetworkSection(h, width),
		m.renderDetailSystemSection(h, width),
	}
	if labels := m.renderLabelLines(h, width-4); len(labels) > 0 {
		sections = append(sections, m.section(m.tr.T("server.labels"), "", labels, width))
	}
	return strings.Join(sections, "\n")
}

// section frames lines with a titled border.
func (m Model) section(title, value string, lines []string, width int) string {
	out := []string{m.styles.SectionHeader(title, value, width)}
	for _, l := range lines {
		out = append(out, m.styles.SectionLine(truncateLine(l, width-4), width))
	}
	out = append(out, m.styles.SectionFooter(width))
	return strings.Join(out, "\n")
}

// renderDetailCPUSection renders the large CPU chart with current, max and
// average over the configured window.
func (m Model) renderDetailCPUSection(h stats.HostStatus, width int) string {
	inner := width - 4
	cpu, ok := h.CPUValue()
	value := m.tr.T("server.unavailable")
	if ok {
		value = format.CPU(cpu)
	}
	window := m.tr.Tf("chart.window", int(m.prefs.CPUChartDuration))

	points := m.cpuSeries(h)
	var lines []string
	if len(points) > 0 {
		s := history.Summarize(points)
		color := func(v float64) lipgloss.Color { return m.styles.MetricColor(v, m.thresholds.CPU) }
		lines = append(lines, fmt.Sprintf("%s %s   %s %s   %s %s   %s",
			m.styles.Label.Render(m.tr.T("dashboard.current")), m.styles.Value.Render(format.CPU(s.Current)),
			m.styles.Label.Render(m.tr.T("dashboard.max")), lipgloss.NewStyle().Foreground(color(s.Max)).Render(format.CPU(s.Max)),
			m.styles.Label.Render(m.tr.T("dashboard.avg")), m.styles.Value.Render(format.CPU(s.Avg)),
			m.styles.Muted.Render(window)))
	}
	lines = append(lines, m.renderCPUChart(points, inner, detailChartHeight)...)

	return m.section(m.tr.T("server.cpuUsage"), value, lines, width)
}

// renderDetailResourceSection renders memory, swap and disk.
func (m Model) renderDetailResourceSection(h stats.HostStatus, width int) string {
	inner := width - 4
	barWidth := inner / 2
	textWidth := inner - barWidth - 1

	// text already carries the percentage.
	row := func(key, text string, pct float64, t config.MetricThreshold) string {
		left := spread(m.styles.Label.Render(m.tr.T(key)), m.styles.Value.Render(text), textWidth)
		return left + " " + m.styles.Bar(barWidth, pct, t)
	}

	lines := []string{
		row("server.memory", m.fmt.Memory(h.MemoryUsed, h.MemoryTotal), h.MemoryPercent(), m.thresholds.RAM),
		row("server.swap", m.fmt.Memory(h.SwapUsed, h.SwapTotal), h.SwapPercent(), m.thresholds.RAM),
		row("server.disk", m.fmt.Disk(h.HDDUsed, h.HDDTotal), h.DiskPercent(), m.thresholds.Disk),
	}
	return m.section(m.tr.T("server.memory")+" / "+m.tr.T("server.disk"), "", lines, width)
}

// renderDetailNetworkSection renders rates, traffic and carrier latency.
func (m Model) renderDetailNetworkSection(h stats.HostStatus, width int) string {
	monthIn, monthOut := h.MonthlyTraffic()
	label := func(key string) string { return m.styles.Label.Render(padRight(m.tr.T(key), 14)) }

	lines := []string{
		label("server.download") + m.styles.Value.Render(m.fmt.Speed(h.NetworkRx)) +
			m.styles.Muted.Render(fmt.Sprintf("   %s / %s", m.fmt.Bytes(monthIn, 2), m.fmt.Bytes(h.NetworkIn, 2))),
		label("server.upload") + m.styles.Value.Render(m.fmt.Speed(h.NetworkTx)) +
			m.styles.Muted.Render(fmt.Sprintf("   %s / %s", m.fmt.Bytes(monthOut, 2), m.fmt.Bytes(h.NetworkOut, 2))),
		label("server.latency") + m.styles.Value.Render(m.fmt.Latencies(h)),
		m.styles.Label.Render(padRight("RTT", 14)) + m.styles.Value.Render(m.fmt.RoundTrips(h)),
		label("server.connections") + m.styles.Value.Render(fmt.Sprintf("%s / %s", format.Count(h.TCPCount), format.Count(h.UDPCount))),
	}
	return m.section(m.tr.T("server.network"), "", lines, width)
}

// renderDetailSystemSection renders uptime, load, process counts and the
// reachability badges.
func (m Model) renderDetailSystemSection(h stats.HostStatus, width int) string {
	label := func(key string) string { return m.styles.Label.Render(padRight(m.tr.T(key), 14)) }

	uptime := m.styles.Value.Render(h.Uptime)
	if !h.IsOnline() {
		uptime = m.styles.Offline.Render(m.tr.T("status.offline"))
	}

	lines := []string{
		label("server.uptime") + uptime,
		label("server.load") + m.styles.Value.Render(format.Load(h.Load1, h.Load5, h.Load15)),
		label("server.processes") + m.styles.Value.Render(format.Count(h.ProcessCount)),
		label("server.threads") + m.styles.Value.Render(format.Count(h.ThreadCount)),
		strings.Repeat(" ", 14) + m.ipBadge("IPv4", h.Online4) + " " + m.ipBadge("IPv6", h.Online6),
	}
	if h.LatestTS > 0 {
		lines = append(lines, label("dashboard.updated")+m.styles.Muted.Render(format.Timestamp(h.LatestTS, nil)))
	}
	return m.section(m.tr.T("server.uptime"), "", lines, width)
}
