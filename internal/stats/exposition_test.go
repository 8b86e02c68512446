package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExposition(t *testing.T) {
	hosts := []HostStatus{
		{
			Name: "node1", Alias: "Tokyo", Location: "JP", Type: "KVM",
			Online4: true, CPU: ptr(12.5), Load1: ptr(0.5),
			MemoryUsed: 1024, MemoryTotal: 2048,
			HDDUsed: 1, HDDTotal: 10,
			TCPCount: 3,
		},
		{Name: "node2", Alias: "Paris", Location: "FR", Type: "LXC"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExposition(&buf, hosts))
	out := buf.String()

	assert.Contains(t, out, "# TYPE statboard_host_up gauge")
	assert.Contains(t, out, `statboard_host_up{alias="Tokyo",location="JP",name="node1",type="KVM"} 1`)
	assert.Contains(t, out, `statboard_host_up{alias="Paris",location="FR",name="node2",type="LXC"} 0`)
	assert.Contains(t, out, `statboard_host_cpu_percent{alias="Tokyo",location="JP",name="node1",type="KVM"} 12.5`)
	assert.Contains(t, out, `statboard_host_memory_used_bytes{alias="Tokyo",location="JP",name="node1",type="KVM"} 1.048576e+06`)
	assert.Contains(t, out, `statboard_host_tcp_connections{alias="Tokyo",location="JP",name="node1",type="KVM"} 3`)
	assert.NotContains(t, out, `statboard_host_cpu_percent{alias="Paris"`, "offline hosts only report up")
}

func TestWriteExposition_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExposition(&buf, nil))
	assert.Empty(t, buf.String(), "vectors without children are not gathered")
}
