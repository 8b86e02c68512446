// Package history keeps a short, bounded CPU history per host for trend charts.
//
// Every Add enforces retention for the host it touched: points older than
// MaxAge are dropped, then only the newest MaxPoints are kept. Reads filter to
// the requested window, never looking back further than MaxAge, and cap the
// result at that window's point budget.
package history

import (
	"slices"
	"sync"
	"time"
)

// Window is a chart duration in minutes.
type Window int

const (
	Window1 Window = 1
	Window3 Window = 3
	Window5 Window = 5
)

// Windows lists the supported chart windows in cycling order.
var Windows = []Window{Window1, Window3, Window5}

// MaxAge is the absolute retention ceiling regardless of window.
const MaxAge = 5 * time.Minute

// MaxPoints is the largest per-window cap and the per-host storage limit.
const MaxPoints = 300

// fallbackPoints caps reads for windows outside Windows.
const fallbackPoints = 600

var windowPoints = map[Window]int{
	Window1: 60,
	Window3: 180,
	Window5: 300,
}

// Duration returns the window as a time.Duration.
func (w Window) Duration() time.Duration {
	return time.Duration(w) * time.Minute
}

// MaxPointsFor returns how many points a read over w may return.
func MaxPointsFor(w Window) int {
	if n, ok := windowPoints[w]; ok {
		return n
	}
	return fallbackPoints
}

// Next returns the window after w, wrapping around.
func (w Window) Next() Window {
	i := slices.Index(Windows, w)
	return Windows[(i+1)%len(Windows)]
}

// Point is one CPU sample. Timestamp is Unix milliseconds.
type Point struct {
	Timestamp int64   `json:"timestamp"`
	CPU       float64 `json:"cpu"`
}

// Time returns the sample time.
func (p Point) Time() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// Buffer stores CPU points per host. It is safe for concurrent use.
type Buffer struct {
	mu    sync.RWMutex
	hosts map[string][]Point
	now   func() time.Time
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Buffer) { b.now = now }
}

// NewBuffer creates an empty Buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		hosts: make(map[string][]Point),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add records a CPU sample for hostID at the current time.
func (b *Buffer) Add(hostID string, cpu float64) {
	b.AddAt(hostID, cpu, time.Time{})
}

// AddAt records a CPU sample with an explicit timestamp. A zero ts means now.
func (b *Buffer) AddAt(hostID string, cpu float64, ts time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if ts.IsZero() {
		ts = now
	}

	points := append(b.hosts[hostID], Point{Timestamp: ts.UnixMilli(), CPU: cpu})
	b.hosts[hostID] = prune(points, now.UnixMilli())
}

// prune drops points older than MaxAge and keeps at most MaxPoints.
func prune(points []Point, nowMs int64) []Point {
	maxAgeMs := MaxAge.Milliseconds()
	kept := points[:0]
	for _, p := range points {
		if nowMs-p.Timestamp <= maxAgeMs {
			kept = append(kept, p)
		}
	}
	if len(kept) > MaxPoints {
		kept = kept[len(kept)-MaxPoints:]
	}
	if cap(kept) > 2*MaxPoints {
		kept = slices.Clone(kept)
	}
	return kept
}

// History returns hostID's points within the last w, oldest first, capped
// at MaxPointsFor(w). Windows longer than MaxAge read back MaxAge only, so a
// host that stopped reporting never yields stale points. Unknown hosts return
// an empty slice.
func (b *Buffer) History(hostID string, w Window) []Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	points := b.hosts[hostID]
	cutoff := b.now().UnixMilli() - min(w.Duration(), MaxAge).Milliseconds()

	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Timestamp >= cutoff {
			out = append(out, p)
		}
	}

	if limit := MaxPointsFor(w); len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Values returns just the CPU values of History, for sparklines.
func (b *Buffer) Values(hostID string, w Window) []float64 {
	points := b.History(hostID, w)
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.CPU
	}
	return values
}

// Len returns the number of points stored for hostID.
func (b *Buffer) Len(hostID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.hosts[hostID])
}

// Hosts returns the IDs with stored history, sorted.
func (b *Buffer) Hosts() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.hosts))
	for id := range b.hosts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clear removes all history.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hosts = make(map[string][]Point)
}

// ClearHost removes the history for one host.
func (b *Buffer) ClearHost(hostID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.hosts, hostID)
}
