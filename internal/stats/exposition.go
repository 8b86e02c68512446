package stats

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rileyhilliard/statboard/internal/errors"
)

var hostLabels = []string{"name", "alias", "location", "type"}

type hostGauge struct {
	vec   *prometheus.GaugeVec
	value func(HostStatus) (float64, bool)
}

func newHostGauge(name, help string, value func(HostStatus) (float64, bool)) hostGauge {
	return hostGauge{
		vec: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "statboard",
			Subsystem: "host",
			Name:      name,
			Help:      help,
		}, hostLabels),
		value: value,
	}
}

func always(f func(HostStatus) float64) func(HostStatus) (float64, bool) {
	return func(h HostStatus) (float64, bool) { return f(h), true }
}

// WriteExposition writes hosts in the Prometheus text exposition format, so
// a one-shot `statboard list` can feed node_exporter's textfile collector.
// Offline hosts only report statboard_host_up.
func WriteExposition(w io.Writer, hosts []HostStatus) error {
	up := newHostGauge("up", "Whether the host is online over IPv4 or IPv6.", always(func(h HostStatus) float64 {
		if h.IsOnline() {
			return 1
		}
		return 0
	}))
	gauges := []hostGauge{
		newHostGauge("cpu_percent", "CPU usage percentage.", HostStatus.CPUValue),
		newHostGauge("load1", "1-minute load average.", HostStatus.LoadValue),
		newHostGauge("memory_used_bytes", "Used memory in bytes.", always(func(h HostStatus) float64 { return h.MemoryUsed * 1024 })),
		newHostGauge("memory_total_bytes", "Total memory in bytes.", always(func(h HostStatus) float64 { return h.MemoryTotal * 1024 })),
		newHostGauge("swap_used_bytes", "Used swap in bytes.", always(func(h HostStatus) float64 { return h.SwapUsed * 1024 })),
		newHostGauge("disk_used_bytes", "Used disk in bytes.", always(func(h HostStatus) float64 { return h.HDDUsed * 1024 * 1024 })),
		newHostGauge("disk_total_bytes", "Total disk in bytes.", always(func(h HostStatus) float64 { return h.HDDTotal * 1024 * 1024 })),
		newHostGauge("network_receive_bytes_per_second", "Current receive rate.", always(func(h HostStatus) float64 { return h.NetworkRx })),
		newHostGauge("network_transmit_bytes_per_second", "Current transmit rate.", always(func(h HostStatus) float64 { return h.NetworkTx })),
		newHostGauge("network_receive_bytes", "Bytes received since boot.", always(func(h HostStatus) float64 { return h.NetworkIn })),
		newHostGauge("network_transmit_bytes", "Bytes sent since boot.", always(func(h HostStatus) float64 { return h.NetworkOut })),
		newHostGauge("tcp_connections", "Open TCP connections.", always(func(h HostStatus) float64 { return float64(h.TCPCount) })),
		newHostGauge("processes", "Running processes.", always(func(h HostStatus) float64 { return float64(h.ProcessCount) })),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(up.vec)
	for _, g := range gauges {
		reg.MustRegister(g.vec)
	}

	for _, h := range hosts {
		labels := prometheus.Labels{"name": h.Name, "alias": h.Alias, "location": h.Location, "type": h.Type}
		v, _ := up.value(h)
		up.vec.With(labels).Set(v)
		if !h.IsOnline() {
			continue
		}
		for _, g := range gauges {
			if v, ok := g.value(h); ok {
				g.vec.With(labels).Set(v)
			}
		}
	}

	families, err := reg.Gather()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrDecode,
			"Cannot build metrics from snapshot",
			"Two hosts may share the same name and alias")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
