package tui

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Oureyelet/funclab/internal/config"
	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/format"
	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/sysmon"
)

// focusArea identifies which panel receives key input.
type focusArea int

const (
	focusList focusArea = iota
	focusOutput
)

// TickMsg drives the periodic header refresh.
type TickMsg time.Time

// SysStatsMsg carries a system usage sample to the header.
type SysStatsMsg sysmon.Stats

// LessonDoneMsg reports a finished lesson run back to the model.
type LessonDoneMsg struct {
	Name     string
	Output   string
	Duration time.Duration
	Err      error
}

// Layout constants for the lesson browser.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	ListPanelWidthPercent = 30
)

// Model is the root bubbletea model for the lesson browser.
type Model struct {
	header HeaderModel
	keymap KeyMap
	help   help.Model

	catalog  []lessons.Lesson
	params   lessons.Params
	timeout  time.Duration
	viewport viewport.Model

	cursor   int
	focus    focusArea
	running  bool
	lastRun  *LessonDoneMsg
	width    int
	height   int
	exitCode int
}

// NewModel creates a new lesson browser model.
func NewModel(registry *lessons.Registry, cfg config.AppConfig, version string) Model {
	h := help.New()
	h.Styles.ShortKey = footerKeyStyle
	h.Styles.ShortDesc = footerDescStyle
	h.Styles.ShortSeparator = footerDescStyle

	return Model{
		header:  NewHeaderModel(version),
		keymap:  DefaultKeyMap(),
		help:    h,
		catalog: registry.All(),
		params: lessons.Params{
			NaiveTerms: cfg.NaiveTerms,
			MemoTerms:  cfg.MemoTerms,
			MaxDepth:   cfg.MaxDepth,
		},
		timeout:  cfg.Timeout,
		viewport: viewport.New(0, 0),
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), sampleSysStatsCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.header.SetSysStats(sysmon.Stats(msg))
		return m, nil

	case LessonDoneMsg:
		m.running = false
		m.lastRun = &msg
		m.viewport.SetContent(msg.Output)
		m.viewport.GotoTop()
		m.focus = focusOutput
		if msg.Err != nil {
			m.exitCode = apperrors.ExitErrorLesson
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Back):
		m.focus = focusList
		return m, nil
	}

	if m.focus == focusOutput {
		switch {
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, m.keymap.PageUp):
			m.viewport.PageUp()
		case key.Matches(msg, m.keymap.PageDown):
			m.viewport.PageDown()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.catalog)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Enter):
		if m.running || len(m.catalog) == 0 {
			return m, nil
		}
		m.running = true
		return m, runLessonCmd(m.catalog[m.cursor], m.params, m.timeout)
	}

	return m, nil
}

// View renders the browser: header, lesson list, output panel and footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footerView()

	list := panelStyle.
		Width(m.listWidth() - 2).
		Height(m.bodyHeight() - 2).
		Render(m.listView())
	output := panelStyle.
		Width(m.outputWidth() - 2).
		Height(m.bodyHeight() - 2).
		Render(m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, output)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// listView renders the lesson catalog with the selection cursor.
func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lessons"))
	b.WriteString("\n\n")

	for i, l := range m.catalog {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + l.Name()))
		} else {
			b.WriteString(itemStyle.Render(l.Name()))
		}
		b.WriteString("\n")
		b.WriteString(lessonTitleStyle.Render("    " + l.Title()))
		b.WriteString("\n")
	}

	if m.running {
		b.WriteString("\n")
		b.WriteString(elapsedStyle.Render("running..."))
	} else if m.lastRun != nil {
		b.WriteString("\n")
		b.WriteString(m.statusLine())
	}
	return b.String()
}

// statusLine renders the outcome of the most recent run.
func (m Model) statusLine() string {
	if m.lastRun.Err != nil {
		return statusErrStyle.Render("✗ " + m.lastRun.Name + ": " + m.lastRun.Err.Error())
	}
	return statusOKStyle.Render("✓ " + m.lastRun.Name + " in " +
		format.FormatExecutionDuration(m.lastRun.Duration))
}

// footerView renders the key help line.
func (m Model) footerView() string {
	return " " + m.help.View(m.keymap)
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

func (m Model) listWidth() int {
	return m.width * ListPanelWidthPercent / 100
}

func (m Model) outputWidth() int {
	return m.width - m.listWidth()
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	m.viewport.Width = m.outputWidth() - 2
	m.viewport.Height = m.bodyHeight() - 2
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, registry *lessons.Registry, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(registry, cfg, version)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// runLessonCmd returns a tea.Cmd that executes one lesson into a buffer.
// The lesson gets an empty input reader, so interactive demos fall back to
// their defaults instead of reading terminal input owned by bubbletea.
func runLessonCmd(lesson lessons.Lesson, params lessons.Params, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var buf bytes.Buffer
		start := time.Now()
		err := lesson.Run(ctx, strings.NewReader(""), &buf, params)

		return LessonDoneMsg{
			Name:     lesson.Name(),
			Output:   buf.String(),
			Duration: time.Since(start),
			Err:      err,
		}
	}
}

// tickCmd returns a command that sends a TickMsg after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}
