package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Oureyelet/funclab/internal/format"
	"github.com/Oureyelet/funclab/internal/sysmon"
)

// HeaderModel renders the top bar: title, version, elapsed time and a
// system usage sample refreshed on every tick.
type HeaderModel struct {
	startTime time.Time
	version   string
	width     int
	sys       sysmon.Stats
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// SetSysStats updates the system usage sample shown on the right.
func (h *HeaderModel) SetSysStats(s sysmon.Stats) {
	h.sys = s
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "funclab"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := elapsedStyle.Render(" | ")
	elapsed := elapsedStyle.Render(fmt.Sprintf("Elapsed: %s",
		format.FormatExecutionDuration(time.Since(h.startTime))))

	leftPart := title + pipe + elapsed
	rightPart := sysStyle.Render(h.sys.String())

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - lipgloss.Width(leftPart) - lipgloss.Width(rightPart)
	if gap < 0 {
		gap = 0
	}

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap) + rightPart)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
