package format

import (
	"math"
	"testing"
	"time"

	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/stats"
	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestBytes(t *testing.T) {
	bin := New(Binary, nil)
	dec := New(Decimal, nil)

	tests := []struct {
		name     string
		f        Formatter
		n        float64
		decimals int
		want     string
	}{
		{"zero", bin, 0, 2, "0 B"},
		{"nan", bin, math.NaN(), 2, "0 B"},
		{"bytes", bin, 512, 2, "512 B"},
		{"one kib", bin, 1024, 2, "1 KiB"},
		{"fraction", bin, 1536, 2, "1.5 KiB"},
		{"rounding", bin, 1024 * 1024 * 1.234567, 2, "1.23 MiB"},
		{"one decimal", bin, 1024 * 1024 * 1.25, 1, "1.3 MiB"},
		{"gib", bin, 8 * 1024 * 1024 * 1024, 2, "8 GiB"},
		{"decimal kb", dec, 1500, 2, "1.5 KB"},
		{"decimal gb", dec, 2_500_000_000, 2, "2.5 GB"},
		{"negative decimals", bin, 1536, -1, "2 KiB"},
		{"sub-byte", bin, 0.5, 2, "0.5 B"},
		{"negative", bin, -2048, 2, "-2 KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Bytes(tt.n, tt.decimals))
		})
	}
}

func TestSpeed(t *testing.T) {
	assert.Equal(t, "1.5 KiB/s", New(Binary, nil).Speed(1536))
	assert.Equal(t, "0 B/s", New(Binary, nil).Speed(0))
}

func TestMemoryAndDisk(t *testing.T) {
	f := New(Binary, nil)

	assert.Equal(t, "512 MiB / 1 GiB (50.0%)", f.Memory(512*1024, 1024*1024))
	assert.Equal(t, "0 B / 0 B (0.0%)", f.Memory(0, 0))
	assert.Equal(t, "10 GiB / 40 GiB (25.0%)", f.Disk(10*1024, 40*1024))
}

func TestLatency(t *testing.T) {
	en := New(Binary, i18n.New(i18n.EnUS))
	zh := New(Binary, i18n.New(i18n.ZhCN))

	assert.Equal(t, "timeout", en.Latency(0))
	assert.Equal(t, "超时", zh.Latency(0))
	assert.Equal(t, "n/a", en.Latency(100))
	assert.Equal(t, "42ms", en.Latency(41.6))

	h := stats.HostStatus{Ping10010: 12, Ping189: 0, Ping10086: 100}
	assert.Equal(t, "12ms / timeout / n/a", en.Latencies(h))

	h = stats.HostStatus{Time10010: 35, Time189: 40.4, Time10086: 0}
	assert.Equal(t, "35ms / 40ms / 0ms", en.RoundTrips(h))
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "-", New(Binary, nil).Ago(time.Time{}, now))
	assert.Equal(t, "5 seconds ago", New(Binary, i18n.New(i18n.EnUS)).Ago(now.Add(-5*time.Second), now))
	assert.Equal(t, "3 分钟前", New(Binary, i18n.New(i18n.ZhCN)).Ago(now.Add(-3*time.Minute), now))
	assert.Equal(t, "2 小時前", New(Binary, i18n.New(i18n.ZhTW)).Ago(now.Add(-2*time.Hour), now))
}

func TestSimpleFormatters(t *testing.T) {
	assert.Equal(t, "43%", CPU(42.6))
	assert.Equal(t, "42.6%", Percent(42.61))
	assert.Equal(t, "0.25 / 0.50 / 0.00", Load(f64(0.25), f64(0.5), nil))
	assert.Equal(t, "1,234,567", Count(1234567))
	assert.Equal(t, "2023/11/14 22:13:20", Timestamp(1700000000, time.UTC))
}

func TestRate(t *testing.T) {
	assert.Equal(t, 100.0, Rate(2000, 1000, 10*time.Second))
	assert.Equal(t, 0.0, Rate(500, 1000, 10*time.Second), "counter reset")
	assert.Equal(t, 0.0, Rate(2000, 1000, 0))
}
