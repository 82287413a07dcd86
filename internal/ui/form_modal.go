package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/form"
)

// formSubmittedMsg carries fields that passed validation.
type formSubmittedMsg struct {
	fields books.Fields
}

type formCancelledMsg struct{}

var formLabels = map[string]string{
	form.FieldName:        "Name:      ",
	form.FieldAuthor:      "Author:    ",
	form.FieldPages:       "Pages:     ",
	form.FieldPublishDate: "Published: ",
}

var formPlaceholders = map[string]string{
	form.FieldName:        "at least 3 characters",
	form.FieldAuthor:      "at least 2 characters",
	form.FieldPages:       "1-9999",
	form.FieldPublishDate: "YYYY-MM-DD",
}

// formModal is the add/edit dialog. Inputs follow form.Order.
type formModal struct {
	title    string
	inputs   [4]textinput.Model
	focusIdx int
	errors   form.Errors
}

func newFormModal(title string, in form.Input) (formModal, tea.Cmd) {
	values := map[string]string{
		form.FieldName:        in.Name,
		form.FieldAuthor:      in.Author,
		form.FieldPages:       in.Pages,
		form.FieldPublishDate: in.PublishDate,
	}

	f := formModal{title: title}
	for i, field := range form.Order {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = formPlaceholders[field]
		ti.CharLimit = 120
		ti.Width = 36
		if field == form.FieldPages {
			ti.CharLimit = 6
		}
		ti.SetValue(values[field])
		f.inputs[i] = ti
	}
	return f, f.focus(0)
}

// input collects the raw text of every field.
func (f formModal) input() form.Input {
	return form.Input{
		Name:        f.inputs[0].Value(),
		Author:      f.inputs[1].Value(),
		Pages:       f.inputs[2].Value(),
		PublishDate: f.inputs[3].Value(),
	}
}

func (f *formModal) focus(idx int) tea.Cmd {
	f.inputs[f.focusIdx].Blur()
	f.focusIdx = idx
	return f.inputs[idx].Focus()
}

// Update implements Modal. Enter validates; the dialog stays open with
// per-field messages until the input is valid.
func (f formModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
		return f, cmd, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return f, func() tea.Msg { return formCancelledMsg{} }, true

	case key.Matches(keyMsg, keys.Confirm):
		fields, errs := f.input().Validate()
		if errs.Empty() {
			return f, func() tea.Msg { return formSubmittedMsg{fields: fields} }, true
		}
		f.errors = errs
		for i, field := range form.Order {
			if errs[field] != "" {
				return f, f.focus(i), false
			}
		}
		return f, nil, false

	case key.Matches(keyMsg, keys.NextField):
		return f, f.focus((f.focusIdx + 1) % len(f.inputs)), false

	case key.Matches(keyMsg, keys.PrevField):
		return f, f.focus((f.focusIdx - 1 + len(f.inputs)) % len(f.inputs)), false
	}

	var cmd tea.Cmd
	f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
	return f, cmd, false
}

// View implements Modal.
func (f formModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(f.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 48)))
	b.WriteString("\n\n")

	for i, field := range form.Order {
		label := formLabels[field]
		if i == f.focusIdx {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		b.WriteString(label)
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
		if msg := f.errors[field]; msg != "" {
			b.WriteString(strings.Repeat(" ", len(formLabels[field])))
			b.WriteString(styles.DangerText.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Save  •  Tab: Next field  •  Esc: Cancel"))

	return placeModal(theme, width, height, 60, b.String())
}
