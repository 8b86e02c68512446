// Package filter narrows the host list by status, location and type, and
// summarizes it for the dashboard header.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/stats"
)

// Status filters on reachability.
type Status string

const (
	StatusAll     Status = "all"
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Statuses lists status filters in cycling order.
var Statuses = []Status{StatusAll, StatusOnline, StatusOffline}

// Next returns the status after s, wrapping around.
func (s Status) Next() Status {
	i := slices.Index(Statuses, s)
	return Statuses[(i+1)%len(Statuses)]
}

// ParseStatus parses a status filter name. Empty means all.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return StatusAll, nil
	}
	if slices.Contains(Statuses, st) {
		return st, nil
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown status filter '%s'", s),
		"Use all, online, or offline")
}

// Criteria selects hosts. Empty Location and Type match everything.
// Location matches exactly; Type matches case-insensitively.
type Criteria struct {
	Status   Status
	Location string
	Type     string
}

// Active reports whether any filter narrows the list.
func (c Criteria) Active() bool {
	return (c.Status != "" && c.Status != StatusAll) || c.Location != "" || c.Type != ""
}

// Match reports whether h passes every filter.
func (c Criteria) Match(h stats.HostStatus) bool {
	if c.Location != "" && h.Location != c.Location {
		return false
	}
	if c.Type != "" && (h.Type == "" || strings.ToLower(h.Type) != strings.ToLower(c.Type)) {
		return false
	}
	switch c.Status {
	case StatusOnline:
		return h.IsOnline()
	case StatusOffline:
		return !h.IsOnline()
	}
	return true
}

// Apply returns the hosts matching c, preserving order.
func Apply(hosts []stats.HostStatus, c Criteria) []stats.HostStatus {
	out := make([]stats.HostStatus, 0, len(hosts))
	for _, h := range hosts {
		if c.Match(h) {
			out = append(out, h)
		}
	}
	return out
}

// Locations returns distinct non-empty locations in first-seen order.
func Locations(hosts []stats.HostStatus) []string {
	return distinct(hosts, func(h stats.HostStatus) string { return h.Location })
}

// Types returns distinct non-empty types, lowercased, in first-seen order.
func Types(hosts []stats.HostStatus) []string {
	return distinct(hosts, func(h stats.HostStatus) string { return strings.ToLower(h.Type) })
}

func distinct(hosts []stats.HostStatus, key func(stats.HostStatus) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, h := range hosts {
		k := key(h)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Cycle returns the option after current in options, where "" (no filter)
// comes first. Used to step through locations and types with one key.
func Cycle(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	i := slices.Index(options, current)
	if i < 0 || i == len(options)-1 {
		return ""
	}
	return options[i+1]
}

// Summary counts hosts by reachability.
type Summary struct {
	Total   int
	Online  int
	Offline int
	// OfflineNames holds display names of offline hosts in input order.
	OfflineNames []string
}

// Summarize counts hosts. It should be given the unfiltered list.
func Summarize(hosts []stats.HostStatus) Summary {
	s := Summary{Total: len(hosts)}
	for _, h := range hosts {
		if h.IsOnline() {
			s.Online++
			continue
		}
		s.Offline++
		s.OfflineNames = append(s.OfflineNames, h.DisplayName())
	}
	return s
}
