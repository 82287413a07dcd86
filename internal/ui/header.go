package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status line: logo, counts, last change, last action.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("bookshelf", styles.Logo)}

	total := len(m.snapshot.Books)
	parts = append(parts,
		bg.Render("Books:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", total), styles.Text))

	if m.filterQuery != "" {
		parts = append(parts,
			bg.Render("Showing:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.visibleBooks())), styles.AccentText))
	}

	if !compact {
		parts = append(parts,
			bg.Render("Changed:", styles.MutedText)+bg.Space()+
				bg.Render(formatChanged(m.snapshot.UpdatedAt, time.Now()), styles.FaintText))
	}

	if m.status != "" {
		parts = append(parts, bg.Render(truncate(m.status, 40), styles.SuccessText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, bg.Spaces(2)))
}

// formatChanged formats the time of the last store mutation relative to now.
func formatChanged(at, now time.Time) string {
	if at.IsZero() {
		return "never"
	}

	since := now.Sub(at)
	s := at.Format("15:04:05")
	switch {
	case since < time.Minute:
		s += " (now)"
	case since < time.Hour:
		s += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		s += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return s
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewActivity:
		commands = []cmd{
			{"Space", ternary(m.activity.follow, "Pause", "Follow")},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"esc", "Books"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"a", "Add"},
			{"e", "Edit"},
			{"d", "Delete"},
			{"/", "Filter"},
			{"j/k", "Navigate"},
			{"l", "Activity"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
