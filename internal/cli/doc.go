// Package cli implements the statboard command-line interface.
//
// Each Cobra command is a thin shell: it parses flags, loads config and
// settings, and hands off to the internal packages that do the work.
//
// # Command Structure
//
//	statboard                     - Live dashboard (same as monitor)
//	statboard monitor             - Live dashboard
//	statboard list                - One-shot table, JSON or Prometheus output
//	statboard settings [get|set|reset|edit|path]
//	statboard install             - Agent one-click install command
//	statboard completion <shell>  - Shell completion script
//	statboard version
//
// # Flag Handling
//
// Global flags (--config, --json, --no-color, --color) live on the root
// command. SortFlags and FilterFlags are shared by commands that rank or
// narrow the host list.
//
// Dashboard flags (--interval, --display, --sort, --order) are written
// through the settings Manager, so they persist like the matching keys.
//
// # Machine Mode
//
// With --json every command writes a JSONEnvelope to stdout, and errors are
// mapped to stable codes such as FETCH_FAILED or CONFIG_INVALID.
package cli
