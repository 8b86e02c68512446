// Package format renders host values for display: byte sizes in binary or
// decimal units, usage ratios, load, latency and timestamps.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/stats"
)

// Units selects the byte unit system.
type Units string

const (
	Binary  Units = "binary"
	Decimal Units = "decimal"
)

var (
	binarySizes  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
	decimalSizes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
)

// TimestampLayout is the absolute time format used across the dashboard.
const TimestampLayout = "2006/01/02 15:04:05"

// Formatter carries the unit system and translator so call sites don't
// thread them through every call.
type Formatter struct {
	Units Units
	tr    *i18n.Translator
}

// New creates a Formatter. A nil translator uses English.
func New(units Units, tr *i18n.Translator) Formatter {
	if tr == nil {
		tr = i18n.New(i18n.EnUS)
	}
	return Formatter{Units: units, tr: tr}
}

// Bytes renders n bytes with up to decimals fraction digits, trimming
// trailing zeros: "1.5 GiB", "512 B", "0 B".
func (f Formatter) Bytes(n float64, decimals int) string {
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return "0 B"
	}
	if n < 0 {
		return "-" + f.Bytes(-n, decimals)
	}

	k, sizes := 1024.0, binarySizes
	if f.Units == Decimal {
		k, sizes = 1000.0, decimalSizes
	}
	if decimals < 0 {
		decimals = 0
	}

	i := int(math.Floor(math.Log(n) / math.Log(k)))
	i = max(0, min(i, len(sizes)-1))

	return trimFloat(n/math.Pow(k, float64(i)), decimals) + " " + sizes[i]
}

// Speed renders a byte rate with one decimal: "1.5 MiB/s".
func (f Formatter) Speed(bytesPerSec float64) string {
	return f.Bytes(bytesPerSec, 1) + "/s"
}

// Memory renders KiB values as "used / total (pct%)".
func (f Formatter) Memory(usedKiB, totalKiB float64) string {
	return f.usage(usedKiB*1024, totalKiB*1024, stats.Percent(usedKiB, totalKiB))
}

// Disk renders MiB values as "used / total (pct%)".
func (f Formatter) Disk(usedMiB, totalMiB float64) string {
	return f.usage(usedMiB*1024*1024, totalMiB*1024*1024, stats.Percent(usedMiB, totalMiB))
}

func (f Formatter) usage(used, total, pct float64) string {
	return fmt.Sprintf("%s / %s (%.1f%%)", f.Bytes(used, 2), f.Bytes(total, 2), pct)
}

// Latency renders one ping value. 0 means the probe timed out and 100 means
// the carrier is unreachable.
func (f Formatter) Latency(ping float64) string {
	switch {
	case ping == 0 || math.IsNaN(ping):
		return f.tr.T("server.timeout")
	case ping == 100:
		return f.tr.T("server.unavailable")
	}
	return fmt.Sprintf("%.0fms", ping)
}

// Latencies renders the three carrier pings joined by " / ".
func (f Formatter) Latencies(h stats.HostStatus) string {
	return strings.Join([]string{
		f.Latency(h.Ping10010),
		f.Latency(h.Ping189),
		f.Latency(h.Ping10086),
	}, " / ")
}

// RoundTrips renders the three carrier round-trip times in ms.
func (f Formatter) RoundTrips(h stats.HostStatus) string {
	return fmt.Sprintf("%.0fms / %.0fms / %.0fms", h.Time10010, h.Time189, h.Time10086)
}

// Ago renders t relative to now in the translator's language.
func (f Formatter) Ago(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	switch f.tr.Locale() {
	case i18n.ZhCN:
		return humanize.CustomRelTime(t, now, "前", "后", zhCNMagnitudes)
	case i18n.ZhTW:
		return humanize.CustomRelTime(t, now, "前", "後", zhTWMagnitudes)
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

var zhCNMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "刚刚", DivBy: time.Second},
	{D: time.Minute, Format: "%d 秒%s", DivBy: time.Second},
	{D: time.Hour, Format: "%d 分钟%s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%d 小时%s", DivBy: time.Hour},
	{D: humanize.Month, Format: "%d 天%s", DivBy: humanize.Day},
	{D: humanize.Year, Format: "%d 个月%s", DivBy: humanize.Month},
	{D: math.MaxInt64, Format: "%d 年%s", DivBy: humanize.Year},
}

var zhTWMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "剛剛", DivBy: time.Second},
	{D: time.Minute, Format: "%d 秒%s", DivBy: time.Second},
	{D: time.Hour, Format: "%d 分鐘%s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%d 小時%s", DivBy: time.Hour},
	{D: humanize.Month, Format: "%d 天%s", DivBy: humanize.Day},
	{D: humanize.Year, Format: "%d 個月%s", DivBy: humanize.Month},
	{D: math.MaxInt64, Format: "%d 年%s", DivBy: humanize.Year},
}

// CPU renders a percentage with no decimals.
func CPU(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// Percent renders a percentage with one decimal.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Load renders the three load averages. Missing values render as 0.
func Load(l1, l5, l15 *float64) string {
	return fmt.Sprintf("%.2f / %.2f / %.2f", deref(l1), deref(l5), deref(l15))
}

// Count renders an integer with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Timestamp renders epoch seconds as YYYY/MM/DD HH:MM:SS in loc.
func Timestamp(sec int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(TimestampLayout)
}

// Rate computes a per-second rate from two counter readings. A counter
// that went backwards (agent restart) yields 0.
func Rate(current, last float64, interval time.Duration) float64 {
	if current < last || interval <= 0 {
		return 0
	}
	return (current - last) / interval.Seconds()
}

func deref(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}

func trimFloat(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', -1, 64)
}
