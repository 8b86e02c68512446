// Package stats models the ServerStatus host snapshot and fetches it.
//
// The endpoint publishes one JSON document, {"updated": ..., "servers": [...]},
// that is decoded into a Snapshot of HostStatus records. Poller wraps the
// fetch so that overlapping refresh ticks share one request and a late
// response can never replace newer data.
package stats
