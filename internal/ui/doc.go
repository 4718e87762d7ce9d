// Package ui provides terminal color themes for funclab output.
// It exposes ANSI escape accessors for the CLI and a lipgloss palette for
// the TUI, with NO_COLOR support per https://no-color.org/.
package ui
