// Package monitor implements the terminal status dashboard.
//
// The dashboard polls the stats endpoint on a timer and renders every host
// as a card or a table row, with CPU history charts drawn from a retention
// buffer.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds application state (hosts, preferences, selection, filters)
//   - Update: Processes messages (keystrokes, ticks, poll results, settings)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
//  1. tickMsg fires at the configured refresh interval
//  2. pollCmd() fetches a snapshot through stats.Poller
//  3. pollMsg arrives; results older than the newest applied one are dropped
//  4. online hosts' CPU values go into history.Buffer
//  5. hosts are filtered and ranked, then View() re-renders
//
// A failed poll keeps the last good snapshot on screen under a banner. Only a
// failure before any data has loaded replaces the dashboard with an error.
//
// # Settings
//
// Display preferences live in settings.Manager. Keys that change them go
// through Manager.Update so they are persisted, and the model also listens
// to Manager notifications so changes made elsewhere show up live.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C      - Quit
//	r              - Refresh now
//	s / d          - Cycle sort key / flip direction
//	w / c          - Cycle CPU chart window / toggle chart
//	u, T, l        - Units, theme, language
//	v, S, f        - Cards or rows, summary panel, filter bar
//	o, L, t        - Cycle status, location and type filters
//	arrows, j/k    - Move selection
//	Enter / Esc    - Open host detail / go back
//	?              - Toggle help overlay
package monitor
