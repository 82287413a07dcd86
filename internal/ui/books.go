package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/form"
)

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name or author..."
	ti.Prompt = "/"
	ti.CharLimit = 100
	return ti
}

// visibleBooks returns the snapshot narrowed by the current filter.
func (m Model) visibleBooks() []books.Book {
	return books.Filter(m.snapshot.Books, m.filterQuery)
}

// selectedBook returns the book under the cursor.
func (m Model) selectedBook() (books.Book, bool) {
	visible := m.visibleBooks()
	if m.selectedRow < 0 || m.selectedRow >= len(visible) {
		return books.Book{}, false
	}
	return visible[m.selectedRow], true
}

func (m Model) selectedID() int {
	if b, ok := m.selectedBook(); ok {
		return b.ID
	}
	return 0
}

// selectID moves the cursor to the book with id if it is visible.
func (m *Model) selectID(id int) {
	for i, b := range m.visibleBooks() {
		if b.ID == id {
			m.selectedRow = i
			return
		}
	}
}

// updateSelection keeps the cursor on the book with id when the list
// changes, or clamps it when that book is gone.
func (m *Model) updateSelection(id int) {
	visible := m.visibleBooks()
	if len(visible) == 0 {
		m.selectedRow = 0
		return
	}

	if id > 0 {
		for i, b := range visible {
			if b.ID == id {
				m.selectedRow = i
				return
			}
		}
	}

	if m.selectedRow >= len(visible) {
		m.selectedRow = len(visible) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// handleBooksKey processes keyboard input for the books view.
func (m Model) handleBooksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.page.AddNew()
		modal, cmd := newFormModal(m.page.FormTitle(), form.Input{})
		m.modal = modal
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		b, ok := m.selectedBook()
		if !ok {
			return m, nil
		}
		m.page.Edit(b)
		modal, cmd := newFormModal(m.page.FormTitle(), form.FromBook(b))
		m.modal = modal
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		b, ok := m.selectedBook()
		if !ok {
			return m, nil
		}
		if m.prefs.ConfirmDelete {
			m.modal = confirmDeleteModal{book: b}
			return m, nil
		}
		m.deleteBook(b.ID)
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterActive = true
		m.filterInput.SetValue(m.filterQuery)
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.filterQuery != "" {
			m.setFilter("")
		}
		return m, nil
	}

	count := len(m.visibleBooks())
	if count == 0 {
		return m, nil
	}

	page := max(m.tableRows(), 1)
	switch {
	case key.Matches(msg, m.keys.Down):
		m.selectedRow = min(m.selectedRow+1, count-1)
	case key.Matches(msg, m.keys.Up):
		m.selectedRow = max(m.selectedRow-1, 0)
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selectedRow = min(m.selectedRow+page, count-1)
	case key.Matches(msg, m.keys.PageUp):
		m.selectedRow = max(m.selectedRow-page, 0)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selectedRow = min(m.selectedRow+page/2, count-1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selectedRow = max(m.selectedRow-page/2, 0)
	}

	return m, nil
}

// handleFilterInput handles keyboard input while the filter is being typed.
// The list narrows on every keystroke.
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.filterActive = false
		m.filterInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.filterActive = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.setFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilter(m.filterInput.Value())
	return m, cmd
}

func (m *Model) setFilter(query string) {
	selected := m.selectedID()
	m.filterQuery = strings.TrimSpace(query)
	m.updateSelection(selected)
}

// deleteBook removes a book through the page controller.
func (m *Model) deleteBook(id int) {
	if m.page.Delete(id) {
		m.status = fmt.Sprintf("Deleted #%d", id)
	}
	m.refresh()
}

// booksTitle returns the table title, with counts while a filter is applied.
func (m Model) booksTitle() string {
	if m.filterQuery == "" {
		return "Books"
	}
	return fmt.Sprintf("Books (%d/%d)", len(m.visibleBooks()), len(m.snapshot.Books))
}

// boxHeight is the height of the books box, leaving room for the filter line.
func (m Model) boxHeight() int {
	h := m.height - 2 // header + command bar
	if m.filterActive || m.filterQuery != "" {
		h--
	}
	return h
}

// tableRows is the number of book rows that fit in the box.
func (m Model) tableRows() int {
	return m.boxHeight() - 3 // borders + column header
}

// renderBooks renders the books view.
func (m Model) renderBooks() string {
	styles := m.theme.Styles()
	height := m.boxHeight()

	var content string
	switch {
	case len(m.snapshot.Books) == 0:
		content = styles.MutedText.Background(lipgloss.Color(m.theme.FocusBg)).
			Render("No books yet. Press a to add one.")
	case len(m.visibleBooks()) == 0:
		content = styles.MutedText.Background(lipgloss.Color(m.theme.FocusBg)).
			Render("No books match " + strconv.Quote(m.filterQuery))
	default:
		content = m.renderBookTable(m.width-2, m.theme.FocusBg)
	}

	box := m.renderTitledBox(m.booksTitle(), content, m.width, height, true)
	if height == m.height-2 {
		return box
	}
	return box + "\n" + m.renderFilterLine()
}

// renderFilterLine shows the filter input while typing, or the applied query.
func (m Model) renderFilterLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var line string
	if m.filterActive {
		line = m.filterInput.View()
	} else {
		line = bg.Render("/"+m.filterQuery, styles.AccentText) + bg.Spaces(2) +
			bg.Render("esc to clear", styles.FaintText)
	}
	return bg.FillLine(line, m.width)
}

type bookColumns struct {
	id, name, author, pages, date int
}

// columns splits width between the table columns. Narrow terminals drop
// the published column.
func columns(width int) bookColumns {
	c := bookColumns{id: colIDWidth, pages: colPagesWidth, date: colDateWidth}
	gaps := 4 * colGap
	if width < LayoutCompactWidth {
		c.date = 0
		gaps = 3 * colGap
	}
	flex := max(width-c.id-c.pages-c.date-gaps, 2)
	c.name = flex * 55 / 100
	c.author = flex - c.name
	return c
}

// renderBookTable renders the visible books as styled rows under a column header.
func (m Model) renderBookTable(width int, bgColor string) string {
	styles := m.theme.Styles()
	cols := columns(width)

	header := m.formatRow(cols, "#", "Name", "Author", "Pages", "Published")
	lines := []string{
		styles.ColumnHeader.Background(lipgloss.Color(bgColor)).Width(width).Render(header),
	}

	visible := m.visibleBooks()
	rows := max(m.tableRows(), 1)
	offset := 0
	if m.selectedRow >= rows {
		offset = m.selectedRow - rows + 1
	}

	for i := offset; i < len(visible) && i < offset+rows; i++ {
		b := visible[i]
		content := m.formatRow(cols, strconv.Itoa(b.ID), b.Name, b.Author, strconv.Itoa(b.Pages), b.PublishDate)
		style := styles.Text.Background(lipgloss.Color(bgColor))
		if i == m.selectedRow {
			style = styles.Selected
		}
		lines = append(lines, style.Width(width).Render(content))
	}

	return strings.Join(lines, "\n")
}

func (m Model) formatRow(c bookColumns, id, name, author, pages, date string) string {
	gap := strings.Repeat(" ", colGap)
	parts := []string{
		padLeft(id, c.id),
		fit(name, c.name),
		fit(author, c.author),
		padLeft(pages, c.pages),
	}
	if c.date > 0 {
		parts = append(parts, fit(date, c.date))
	}
	return strings.Join(parts, gap)
}

// renderTitledBox draws a box with the title embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := ternary(focused, m.theme.BorderFocus, m.theme.Border)
	bgColorStr := ternary(focused, m.theme.FocusBg, m.theme.SurfaceAlt)

	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-2, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")

	var body []string
	for i := range max(height-2, 0) {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		body = append(body,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(body, "\n") + "\n" + bottomBorder
}
