package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// statsFixture has three hosts: bravo outweighs alpha, charlie is offline.
const statsFixture = `{
  "updated": 1700000000,
  "servers": [
    {"name": "alpha", "alias": "alpha", "type": "KVM", "location": "Tokyo", "weight": 10,
     "online4": true, "uptime": "3 天", "cpu": 20, "load_1": 0.5, "load_5": 0.4, "load_15": 0.3,
     "memory_total": 4194304, "memory_used": 1048576, "hdd_total": 40960, "hdd_used": 10240,
     "network_rx": 2048, "network_tx": 1024},
    {"name": "bravo", "alias": "bravo", "type": "lxc", "location": "Osaka", "weight": 20,
     "online4": true, "online6": true, "uptime": "12 天", "cpu": 85,
     "memory_total": 2097152, "memory_used": 1887437, "hdd_total": 20480, "hdd_used": 18432},
    {"name": "charlie", "alias": "charlie", "type": "kvm", "location": "Tokyo", "weight": 5,
     "online4": false, "online6": false, "cpu": null, "latest_ts": 1699990000}
  ]
}`

// setupTestEnv isolates HOME, the working directory and locale variables so
// config discovery and first-run settings don't depend on the machine.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("LC_ALL", "en_US.UTF-8")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("NO_COLOR", "")
	t.Setenv("STATBOARD_ENDPOINT", "")
	t.Setenv("STATBOARD_DEBUG", "")
	t.Setenv("STATBOARD_SETTINGS_FILE", "")
	t.Chdir(home)

	oldCfg, oldMachine := cfgFile, machineMode
	cfgFile, machineMode = "", false
	t.Cleanup(func() {
		cfgFile, machineMode = oldCfg, oldMachine
	})

	return home
}

// writeConfig writes .statboard.yaml into dir and points --config at it.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".statboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfgFile = path
	return path
}

// statsServer serves body at the stats path and counts requests.
func statsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/stats.json" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}
