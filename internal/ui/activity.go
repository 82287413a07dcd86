package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/logtail"
)

// activityState holds the tail of the application log.
type activityState struct {
	lines  []string
	err    error
	follow bool
}

type activityMsg struct {
	lines []string
	err   error
}

// refreshActivity reads the log tail off the UI goroutine.
func (m Model) refreshActivity() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, ActivityLines)
		return activityMsg{lines: lines, err: err}
	}
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity.err = msg.err
	if msg.err == nil {
		m.activity.lines = msg.lines
	}
	m.updateActivityViewport()
}

func (m *Model) initActivityViewport() {
	m.activityViewport = viewport.New(max(m.width-2, 0), max(m.height-4, 0))
}

// updateActivityViewport sizes the viewport to the box and re-renders its content.
func (m *Model) updateActivityViewport() {
	// Box height = m.height - 2 (header, command bar); inner = box - 2 borders
	m.activityViewport.Width = max(m.width-2, 0)
	m.activityViewport.Height = max(m.height-4, 0)
	m.activityViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	m.activityViewport.SetContent(m.renderActivityContent())
	if m.activity.follow {
		m.activityViewport.GotoBottom()
	}
}

// renderActivityContent colors each log line by its parts.
func (m Model) renderActivityContent() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)

	if m.activity.err != nil {
		return bg.Render("Cannot read log: "+m.activity.err.Error(), styles.DangerText)
	}
	if len(m.activity.lines) == 0 {
		return bg.Render("No activity yet", styles.MutedText)
	}

	out := make([]string, 0, len(m.activity.lines))
	for _, line := range m.activity.lines {
		e := logtail.Parse(line)
		if e.Level == "" {
			out = append(out, bg.Render(e.Message, styles.MutedText))
			continue
		}
		parts := []string{
			bg.Render(e.Time, styles.FaintText),
			bg.Render(e.Level, styles.LevelStyle(e.Level).Bold(true)),
		}
		if e.Message != "" {
			parts = append(parts, bg.Render(e.Message, styles.Text))
		}
		if e.Attrs != "" {
			parts = append(parts, bg.Render(e.Attrs, styles.MutedText))
		}
		out = append(out, strings.Join(parts, bg.Space()))
	}
	return strings.Join(out, "\n")
}

// handleActivityKey processes keyboard input for the activity view.
func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBooks
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.activity.follow = !m.activity.follow
		if m.activity.follow {
			m.activityViewport.GotoBottom()
			return m, m.refreshActivity()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.activityViewport.GotoTop()
		m.activity.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.activityViewport.GotoBottom()
		m.activity.follow = true

	case key.Matches(msg, m.keys.Down):
		m.activityViewport.ScrollDown(1)
		m.activity.follow = false

	case key.Matches(msg, m.keys.Up):
		m.activityViewport.ScrollUp(1)
		m.activity.follow = false

	case key.Matches(msg, m.keys.HalfPageDown):
		m.activityViewport.HalfPageDown()
		m.activity.follow = false

	case key.Matches(msg, m.keys.HalfPageUp):
		m.activityViewport.HalfPageUp()
		m.activity.follow = false

	case key.Matches(msg, m.keys.PageDown):
		m.activityViewport.PageDown()
		m.activity.follow = false

	case key.Matches(msg, m.keys.PageUp):
		m.activityViewport.PageUp()
		m.activity.follow = false
	}

	return m, nil
}

// renderActivity renders the activity view.
func (m Model) renderActivity() string {
	title := "Activity"
	if m.activity.follow {
		title += " · following"
	}
	return m.renderTitledBox(title, m.activityViewport.View(), m.width, m.height-2, true)
}
