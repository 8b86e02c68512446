package stats

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/rileyhilliard/statboard/internal/errors"
)

// Decode reads a stats document and normalizes it.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Status endpoint returned malformed JSON",
			"Check that stats_path points at the ServerStatus stats.json")
	}
	Normalize(&snap)
	return &snap, nil
}

// Normalize fills alias from host when alias is empty, which is how
// cppla/ServerStatus names its hosts. A nil server list becomes empty.
func Normalize(snap *Snapshot) {
	if snap.Servers == nil {
		snap.Servers = []HostStatus{}
	}
	for i := range snap.Servers {
		if snap.Servers[i].Alias == "" && snap.Servers[i].Host != "" {
			snap.Servers[i].Alias = snap.Servers[i].Host
		}
	}
}
