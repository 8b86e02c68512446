package monitor

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/format"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/stats"
)

// Card layout constants
const (
	cardWidth       = 40
	cardGraphHeight = 2 // braille graph rows
	cardMargin      = 3 // border + right margin
)

// reservedLabels are rendered as dedicated badges, not in the custom list.
var reservedLabels = map[string]bool{"os": true, "ndd": true, "spec": true}

// expiryLayouts are the date formats agents use for the ndd label.
var expiryLayouts = []string{"2006/01/02", "2006-01-02", "2006/1/2", "2006-1-2"}

// expired reports whether an ndd label date is in the past. Unparseable
// dates are never expired.
func expired(ndd string, now time.Time) bool {
	for _, layout := range expiryLayouts {
		if t, err := time.ParseInLocation(layout, ndd, now.Location()); err == nil {
			return !t.After(now)
		}
	}
	return false
}

// calculateCardWidth determines the card width based on terminal width.
func (m Model) calculateCardWidth() int {
	if m.width == 0 || m.width >= BreakpointCompact {
		return cardWidth
	}
	w := m.width - cardMargin
	if w < 24 {
		w = 24
	}
	return w
}

// cardsPerRow is how many cards fit side by side.
func (m Model) cardsPerRow() int {
	if m.width == 0 {
		return 1
	}
	n := m.width / (m.calculateCardWidth() + cardMargin)
	if n < 1 {
		n = 1
	}
	return n
}

// renderCard renders a single host card.
func (m Model) renderCard(h stats.HostStatus, width int, selected bool) string {
	style := m.styles.Card.Width(width)
	if selected {
		style = m.styles.CardSelected.Width(width)
	}
	inner := width - 4
	divider := m.styles.Divider.Render(strings.Repeat("─", inner))

	var lines []string
	lines = append(lines, spread(m.renderHostTitle(h), m.styles.Muted.Render(h.Location), inner))
	lines = append(lines, m.renderStatusLines(h, inner)...)
	lines = append(lines, divider)
	lines = append(lines, m.renderResourceLines(h, inner)...)
	lines = append(lines, divider)
	lines = append(lines, m.renderNetworkLines(h, inner)...)
	if labels := m.renderLabelLines(h, inner); len(labels) > 0 {
		lines = append(lines, divider)
		lines = append(lines, labels...)
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderHostTitle renders the status glyph, display name and type badge.
func (m Model) renderHostTitle(h stats.HostStatus) string {
	glyph := m.styles.Online.Render(StatusOnline)
	if !h.IsOnline() {
		glyph = m.styles.Offline.Render(StatusOffline)
	}
	title := glyph + " " + m.styles.HostName.Render(h.DisplayName())
	if h.Type != "" {
		title += " " + m.styles.Badge.Render(strings.ToUpper(h.Type))
	}
	return title
}

// renderStatusLines renders uptime, load, latency and the count badges.
func (m Model) renderStatusLines(h stats.HostStatus, width int) []string {
	label := func(key string) string { return m.styles.Label.Render(padRight(m.tr.T(key), 8)) }

	var uptime string
	if h.IsOnline() {
		uptime = m.styles.Value.Render(h.Uptime)
	} else {
		uptime = m.styles.Offline.Render(m.tr.T("status.offline"))
		if h.LatestTS > 0 {
			uptime += " " + m.styles.Muted.Render(format.Timestamp(h.LatestTS, nil))
		}
	}

	badges := []string{
		m.ipBadge("IPv4", h.Online4),
		m.ipBadge("IPv6", h.Online6),
		m.styles.Label.Render(fmt.Sprintf("TCP %s UDP %s", format.Count(h.TCPCount), format.Count(h.UDPCount))),
	}
	counts := m.styles.Label.Render(fmt.Sprintf("%s %s  %s %s",
		m.tr.T("server.processes"), format.Count(h.ProcessCount),
		m.tr.T("server.threads"), format.Count(h.ThreadCount)))

	return []string{
		truncateLine(label("server.uptime")+uptime, width),
		truncateLine(label("server.load")+m.styles.Value.Render(format.Load(h.Load1, h.Load5, h.Load15)), width),
		truncateLine(label("server.latency")+m.styles.Value.Render(m.fmt.Latencies(h)), width),
		truncateLine(strings.Join(badges, " "), width),
		truncateLine(counts, width),
	}
}

func (m Model) ipBadge(name string, up bool) string {
	if up {
		return m.styles.Online.Render(name)
	}
	return m.styles.BadgeOff.Render(BadgeDown + name)
}

// renderResourceLines renders CPU, memory, swap and disk with bars.
func (m Model) renderResourceLines(h stats.HostStatus, width int) []string {
	t := m.thresholds
	var lines []string

	cpu, _ := h.CPUValue()
	cpuValue := lipgloss.NewStyle().Foreground(m.styles.MetricColor(cpu, t.CPU)).Render(format.CPU(cpu))
	lines = append(lines, spread(m.styles.Label.Render(m.tr.T("server.cpu")), cpuValue, width))

	if m.prefs.ShowCPUChart {
		lines = append(lines, m.renderCPUChart(m.cpuSeries(h), width, cardGraphHeight)...)
	} else {
		lines = append(lines, m.styles.Bar(width, cpu, t.CPU))
	}

	gauges := []struct {
		key   string
		text  string
		pct   float64
		limit config.MetricThreshold
	}{
		{"server.memory", m.fmt.Memory(h.MemoryUsed, h.MemoryTotal), h.MemoryPercent(), t.RAM},
		{"server.swap", m.fmt.Memory(h.SwapUsed, h.SwapTotal), h.SwapPercent(), t.RAM},
		{"server.disk", m.fmt.Disk(h.HDDUsed, h.HDDTotal), h.DiskPercent(), t.Disk},
	}
	for _, g := range gauges {
		lines = append(lines,
			truncateLine(spread(m.styles.Label.Render(m.tr.T(g.key)), m.styles.Value.Render(g.text), width), width),
			m.styles.Bar(width, g.pct, g.limit))
	}
	return lines
}

// renderCPUChart renders the CPU history as a braille chart with its axis
// label, or a placeholder when there is no history yet.
func (m Model) renderCPUChart(points []history.Point, width, height int) []string {
	if len(points) == 0 {
		lines := make([]string, height)
		lines[height-1] = m.styles.Muted.Render(m.tr.T("common.noData"))
		return lines
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.CPU
	}
	summary := history.Summarize(points)

	axis := fmt.Sprintf("%.0f%%", summary.AxisMax)
	chartWidth := width - lipgloss.Width(axis) - 1
	if chartWidth < 4 {
		chartWidth = 4
	}
	color := func(v float64) lipgloss.Color { return m.styles.MetricColor(v, m.thresholds.CPU) }
	chart := strings.Split(RenderBrailleChart(values, chartWidth, height, summary.AxisMax, color), "\n")
	for i := range chart {
		prefix := strings.Repeat(" ", lipgloss.Width(axis))
		if i == 0 {
			prefix = m.styles.Muted.Render(axis)
		}
		chart[i] = prefix + " " + chart[i]
	}
	return chart
}

// renderNetworkLines renders current rates and monthly/total traffic.
func (m Model) renderNetworkLines(h stats.HostStatus, width int) []string {
	monthIn, monthOut := h.MonthlyTraffic()

	rates := spread(
		m.styles.Label.Render("↓ ")+m.styles.Value.Render(m.fmt.Speed(h.NetworkRx)),
		m.styles.Label.Render("↑ ")+m.styles.Value.Render(m.fmt.Speed(h.NetworkTx)),
		width)
	in := m.styles.Muted.Render(fmt.Sprintf("↓ %s / %s", m.fmt.Bytes(monthIn, 2), m.fmt.Bytes(h.NetworkIn, 2)))
	out := m.styles.Muted.Render(fmt.Sprintf("↑ %s / %s", m.fmt.Bytes(monthOut, 2), m.fmt.Bytes(h.NetworkOut, 2)))

	return []string{
		rates,
		truncateLine(m.styles.Label.Render(m.tr.T("server.monthTotal")+" ")+in, width),
		truncateLine(strings.Repeat(" ", lipgloss.Width(m.tr.T("server.monthTotal"))+1)+out, width),
	}
}

// renderLabelLines renders os, spec and expiry badges plus custom labels.
func (m Model) renderLabelLines(h stats.HostStatus, width int) []string {
	labels := h.LabelMap()
	if h.Custom != "" {
		for k, v := range stats.ParseLabels(h.Custom) {
			if _, ok := labels[k]; !ok {
				labels[k] = v
			}
		}
	}

	var badges []string
	if osName := []rune(strings.ToLower(labels["os"])); len(osName) > 0 {
		osName[0] = unicode.ToUpper(osName[0])
		badges = append(badges, m.styles.Badge.Render(string(osName)))
	}
	if spec := labels["spec"]; spec != "" {
		badges = append(badges, m.styles.Label.Render(spec))
	}
	if ndd := labels["ndd"]; ndd != "" {
		text := m.tr.T("server.expires") + " " + ndd
		if expired(ndd, m.now()) {
			badges = append(badges, m.styles.Offline.Render(text+" ("+m.tr.T("server.expired")+")"))
		} else {
			badges = append(badges, m.styles.Label.Render(text))
		}
	}

	var lines []string
	if len(badges) > 0 {
		lines = append(lines, truncateLine(strings.Join(badges, "  "), width))
	}

	var custom []string
	for k, v := range labels {
		if reservedLabels[k] || v == "" {
			continue
		}
		custom = append(custom, k+": "+v)
	}
	sort.Strings(custom)
	if len(custom) > 0 {
		lines = append(lines, truncateLine(m.styles.Muted.Render(strings.Join(custom, "  ")), width))
	}
	return lines
}

// Row layout column widths
const (
	rowNameWidth     = 20
	rowLocationWidth = 8
	rowUptimeWidth   = 12
	rowGaugeWidth    = 14
	rowNetWidth      = 24
)

// renderRowHeader renders the column titles for row mode.
func (m Model) renderRowHeader() string {
	cols := []string{
		padRight("", 2),
		padRight(m.tr.T("sort.name"), rowNameWidth),
		padRight(m.tr.T("sort.location"), rowLocationWidth),
		padRight(m.tr.T("server.uptime"), rowUptimeWidth),
		padRight(m.tr.T("server.cpu"), rowGaugeWidth),
		padRight(m.tr.T("server.memory"), rowGaugeWidth),
		padRight(m.tr.T("server.disk"), rowGaugeWidth),
		padRight(m.tr.T("server.network"), rowNetWidth),
		m.tr.T("server.load"),
	}
	return m.styles.Label.Bold(true).Render(strings.Join(cols, " "))
}

// renderRow renders one host as a single table line.
func (m Model) renderRow(h stats.HostStatus, selected bool) string {
	t := m.thresholds
	glyph := m.styles.Online.Render(StatusOnline)
	uptime := h.Uptime
	if !h.IsOnline() {
		glyph = m.styles.Offline.Render(StatusOffline)
		uptime = m.tr.T("status.offline")
	}

	name := h.DisplayName()
	if h.Type != "" {
		name += " " + strings.ToUpper(h.Type)
	}
	nameStyle := m.styles.Value
	if selected {
		nameStyle = m.styles.RowSelected
	}

	cpu, _ := h.CPUValue()
	cpuCell := m.styles.Bar(6, cpu, t.CPU) + " " + format.CPU(cpu)
	if m.prefs.ShowCPUChart {
		if values := m.history.Values(h.ID(), m.prefs.CPUChartDuration); len(values) > 0 {
			color := func(v float64) lipgloss.Color { return m.styles.MetricColor(v, t.CPU) }
			cpuCell = RenderMiniSparkline(values, 8, history.AxisMax(maxOf(values)), color) + " " + format.CPU(cpu)
		}
	}

	cols := []string{
		glyph + " ",
		nameStyle.Render(padRight(truncate(name, rowNameWidth), rowNameWidth)),
		m.styles.Muted.Render(padRight(truncate(h.Location, rowLocationWidth), rowLocationWidth)),
		padRight(truncate(uptime, rowUptimeWidth), rowUptimeWidth),
		padRight(cpuCell, rowGaugeWidth),
		padRight(m.styles.Bar(6, h.MemoryPercent(), t.RAM)+" "+format.Percent(h.MemoryPercent()), rowGaugeWidth),
		padRight(m.styles.Bar(6, h.DiskPercent(), t.Disk)+" "+format.Percent(h.DiskPercent()), rowGaugeWidth),
		padRight("↓"+m.fmt.Speed(h.NetworkRx)+" ↑"+m.fmt.Speed(h.NetworkTx), rowNetWidth),
		format.Load(h.Load1, h.Load5, h.Load15),
	}

	line := strings.Join(cols, " ")
	if selected {
		return m.styles.RowSelected.Render("▌") + line
	}
	return " " + line
}

func maxOf(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// truncate shortens s to maxLen display columns, adding an ellipsis.
func truncate(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen || maxLen < 2 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxLen {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// truncateLine trims an already styled line that overflows width. Styled
// lines are left as is when they fit.
func truncateLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
