package stats

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStats = `{
  "updated": 1700000000,
  "servers": [
    {
      "name": "node1", "alias": "", "host": "Tokyo", "type": "KVM", "location": "JP",
      "online4": true, "online6": false, "uptime": "12 天", "weight": 10,
      "load_1": 0.25, "load_5": 0.5, "load_15": 0.75,
      "cpu": 12.5, "memory_total": 1048576, "memory_used": 524288,
      "hdd_total": 40960, "hdd_used": 10240,
      "network_rx": 1024, "network_tx": 2048,
      "tcp_count": 15, "process_count": 120,
      "labels": "os=debian;", "latest_ts": 1699999999
    },
    {
      "name": "node2", "alias": "Frankfurt", "host": "ignored", "type": "LXC", "location": "DE",
      "online4": false, "online6": false, "uptime": "", "weight": 0,
      "cpu": null
    }
  ]
}`

func TestDecode(t *testing.T) {
	snap, err := Decode(strings.NewReader(sampleStats))
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), snap.Updated)
	require.Len(t, snap.Servers, 2)

	first := snap.Servers[0]
	assert.Equal(t, "Tokyo", first.Alias, "alias falls back to host")
	assert.Equal(t, 10, first.Weight)
	cpu, ok := first.CPUValue()
	require.True(t, ok)
	assert.Equal(t, 12.5, cpu)
	assert.Equal(t, int64(15), first.TCPCount)
	assert.InDelta(t, 50, first.MemoryPercent(), 0.001)
	assert.True(t, first.HasLoad())

	second := snap.Servers[1]
	assert.Equal(t, "Frankfurt", second.Alias, "existing alias is kept")
	_, ok = second.CPUValue()
	assert.False(t, ok, "null cpu is absent")
	assert.False(t, second.HasLoad())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "<html>502 Bad Gateway</html>"},
		{"truncated", `{"updated": 1, "servers": [`},
		{"wrong type", `{"updated": "soon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrDecode))
		})
	}
}

func TestNormalize_NilServers(t *testing.T) {
	snap := &Snapshot{Updated: 1}
	Normalize(snap)
	assert.NotNil(t, snap.Servers)
	assert.Empty(t, snap.Servers)
}
