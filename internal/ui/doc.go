// Package ui provides terminal output helpers for statboard's one-shot
// commands.
//
// The dashboard itself lives in package monitor and carries its own themed
// palettes. This package covers what the CLI prints outside the TUI: the
// version header, the list table, the fleet summary footer and the spinner
// shown while a snapshot is fetched.
//
// # Color Scheme
//
// Colors are hex values rendered through Lip Gloss, which downsamples them
// to whatever the terminal supports:
//
//	ColorSuccess   (neon green)  - Online hosts, successful operations
//	ColorError     (red-pink)    - Offline hosts, failures
//	ColorWarning   (amber)       - Warnings
//	ColorInfo      (cyan)        - Informational messages
//	ColorMuted     (purple-gray) - Secondary text, timing info
//
// ApplyColorMode maps the --color flag and output.color config key onto the
// Lip Gloss color profile. DisableColors switches to monochrome output.
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Fetching stats")
//	s.Start()
//	snap, err := client.Fetch(ctx)
//	if err != nil {
//		s.Fail()
//	}
//	s.SetLabel(fmt.Sprintf("Fetched %d hosts", len(snap.Servers)))
//	s.Success()
//
// The spinner writes to stderr by default so piped stdout stays parseable.
//
// # Tables
//
// RenderSimpleTable renders rows through the Bubbles table component.
// AutoColumns sizes columns to their widest cell so nothing is truncated.
package ui
