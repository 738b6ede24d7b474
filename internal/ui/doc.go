// Package ui provides semantic text formatting for Echo's terminal output.
//
// Formatters colorize content when the terminal supports it and fall back to
// text decorations when NO_COLOR is set or colors are unavailable:
//
//	ui.Path.Sprint("2026/Oct/19/journal.txt")  // no decoration
//	ui.Date.Sprint("2026-10-19")               // [brackets]
//	ui.Code.Sprint("echo seal")                // `backticks`
//	ui.Highlight.Sprint("journal.txt")         // 'quotes'
//	ui.Muted.Sprint("read-only")               // (parentheses)
//
// Check, Cross, Arrow and Lock return the markers that open final messages.
package ui
