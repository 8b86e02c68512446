package stats

import (
	"math"
	"strings"
	"time"
)

// HostStatus is one host's record from a single poll. Records are treated as
// immutable once decoded; sorting and filtering always build new slices.
type HostStatus struct {
	Name     string `json:"name"`
	Alias    string `json:"alias"`
	Host     string `json:"host,omitempty"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Weight   int    `json:"weight"`
	GID      string `json:"gid"`
	Notify   bool   `json:"notify"`
	VnStat   bool   `json:"vnstat"`
	SI       bool   `json:"si"`

	Online4 bool   `json:"online4"`
	Online6 bool   `json:"online6"`
	Uptime  string `json:"uptime"`

	// CPU and load are optional: older agents omit them and offline hosts
	// may report null.
	CPU    *float64 `json:"cpu"`
	Load1  *float64 `json:"load_1"`
	Load5  *float64 `json:"load_5"`
	Load15 *float64 `json:"load_15"`

	// Memory and swap in KiB, disk in MiB.
	MemoryTotal float64 `json:"memory_total"`
	MemoryUsed  float64 `json:"memory_used"`
	SwapTotal   float64 `json:"swap_total"`
	SwapUsed    float64 `json:"swap_used"`
	HDDTotal    float64 `json:"hdd_total"`
	HDDUsed     float64 `json:"hdd_used"`

	// Network rates in bytes/s, totals in bytes. LastNetworkIn/Out are the
	// totals at the start of the month.
	NetworkRx      float64 `json:"network_rx"`
	NetworkTx      float64 `json:"network_tx"`
	NetworkIn      float64 `json:"network_in"`
	NetworkOut     float64 `json:"network_out"`
	LastNetworkIn  float64 `json:"last_network_in"`
	LastNetworkOut float64 `json:"last_network_out"`

	// Packet loss percentages and latency in ms towards the three carriers.
	Ping10010 float64 `json:"ping_10010"`
	Ping189   float64 `json:"ping_189"`
	Ping10086 float64 `json:"ping_10086"`
	Time10010 float64 `json:"time_10010"`
	Time189   float64 `json:"time_189"`
	Time10086 float64 `json:"time_10086"`

	TCPCount     int64 `json:"tcp_count"`
	UDPCount     int64 `json:"udp_count"`
	ProcessCount int64 `json:"process_count"`
	ThreadCount  int64 `json:"thread_count"`

	Labels   string `json:"labels"`
	Custom   string `json:"custom"`
	LatestTS int64  `json:"latest_ts"`
}

// Snapshot is the decoded stats document.
type Snapshot struct {
	Updated int64        `json:"updated"`
	Servers []HostStatus `json:"servers"`
}

// UpdatedAt returns the server-side update time, or the zero time if unset.
func (s *Snapshot) UpdatedAt() time.Time {
	if s == nil || s.Updated == 0 {
		return time.Time{}
	}
	return time.Unix(s.Updated, 0)
}

// ID identifies a host across polls. It is the key for CPU history.
func (h HostStatus) ID() string {
	return h.Name + "-" + h.Alias
}

// DisplayName returns the alias, falling back to the name when alias is empty.
func (h HostStatus) DisplayName() string {
	if h.Alias != "" {
		return h.Alias
	}
	return h.Name
}

// IsOnline reports whether the host is reachable over IPv4 or IPv6.
func (h HostStatus) IsOnline() bool {
	return h.Online4 || h.Online6
}

// CPUValue returns the CPU percentage and whether it is present and finite.
func (h HostStatus) CPUValue() (float64, bool) {
	return gauge(h.CPU)
}

// LoadValue returns the 1-minute load average and whether it is present and finite.
func (h HostStatus) LoadValue() (float64, bool) {
	return gauge(h.Load1)
}

// HasLoad reports whether the agent sent any load average at all.
func (h HostStatus) HasLoad() bool {
	return h.Load1 != nil || h.Load5 != nil || h.Load15 != nil
}

// MemoryPercent returns memory usage clamped to 0-100.
func (h HostStatus) MemoryPercent() float64 {
	return Percent(h.MemoryUsed, h.MemoryTotal)
}

// SwapPercent returns swap usage clamped to 0-100.
func (h HostStatus) SwapPercent() float64 {
	return Percent(h.SwapUsed, h.SwapTotal)
}

// DiskPercent returns disk usage clamped to 0-100.
func (h HostStatus) DiskPercent() float64 {
	return Percent(h.HDDUsed, h.HDDTotal)
}

// MonthlyTraffic returns bytes received and sent since the start of the month.
func (h HostStatus) MonthlyTraffic() (in, out float64) {
	return math.Max(0, h.NetworkIn-h.LastNetworkIn), math.Max(0, h.NetworkOut-h.LastNetworkOut)
}

// LabelMap parses the host's labels string.
func (h HostStatus) LabelMap() map[string]string {
	return ParseLabels(h.Labels)
}

// Percent returns used/total as a percentage clamped to 0-100. A non-positive
// total yields 0.
func Percent(used, total float64) float64 {
	if total <= 0 || math.IsNaN(total) || math.IsNaN(used) {
		return 0
	}
	return math.Min(100, math.Max(0, used/total*100))
}

// ParseLabels parses "os=debian;ndd=2024/11/19;spec=2C/1G/40G;" into a map.
// Empty segments are skipped. A segment without "=" maps to an empty value.
func ParseLabels(s string) map[string]string {
	result := make(map[string]string)
	for _, item := range strings.Split(s, ";") {
		if item == "" {
			continue
		}
		parts := strings.Split(item, "=")
		if parts[0] == "" {
			continue
		}
		value := ""
		if len(parts) > 1 {
			value = parts[1]
		}
		result[parts[0]] = value
	}
	return result
}

func gauge(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
