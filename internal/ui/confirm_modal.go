package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/books"
)

type deleteConfirmedMsg struct {
	id int
}

// confirmDeleteModal asks before a book is removed. It is only shown when
// the confirm_delete preference is set.
type confirmDeleteModal struct {
	book books.Book
}

// Update implements Modal.
func (c confirmDeleteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		id := c.book.ID
		return c, func() tea.Msg { return deleteConfirmedMsg{id: id} }, true
	case key.Matches(keyMsg, keys.No):
		return c, nil, true
	}
	return c, nil, false
}

// View implements Modal.
func (c confirmDeleteModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete book?"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("#%d %s", c.book.ID, c.book.Name)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("by " + c.book.Author))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y: Delete  •  n/Esc: Keep"))

	return placeModal(theme, width, height, 44, b.String())
}
