package ui

// Status glyphs shared by the list table, summary footer and spinner.
const (
	SymbolSuccess = "◉" // host online, step done
	SymbolFail    = "✕" // host offline, step failed
	SymbolWarning = "⚠"
)
