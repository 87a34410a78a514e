// Package ui provides terminal styling for the emoti CLI.
//
// It holds the Lipgloss palette shared by the terminal picker and the
// command output, maps a configured entry style onto a terminal style, and
// provides a Printer for the list and error output of the CLI commands.
//
// Pango font sizes have no terminal equivalent; EntryStyle approximates them
// with bold and faint text.
package ui
