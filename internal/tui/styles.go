package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Oureyelet/funclab/internal/ui"
)

// Style variables for the lesson browser.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	elapsedStyle     lipgloss.Style
	sysStyle         lipgloss.Style
	itemStyle        lipgloss.Style
	selectedStyle    lipgloss.Style
	lessonTitleStyle lipgloss.Style
	statusOKStyle    lipgloss.Style
	statusErrStyle   lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all browser styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	sysStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	itemStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	lessonTitleStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
