package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/form"
)

func TestNewFormModal_PrefillsAndFocusesName(t *testing.T) {
	b := books.Book{ID: 3, Name: "1984", Author: "George Orwell", Pages: 328, PublishDate: "1949-06-08"}
	fm, _ := newFormModal("Edit Book", form.FromBook(b))

	if fm.focusIdx != 0 || !fm.inputs[0].Focused() {
		t.Fatalf("focus = %d, want name focused", fm.focusIdx)
	}
	if got := fm.input(); got != form.FromBook(b) {
		t.Fatalf("input() = %#v, want %#v", got, form.FromBook(b))
	}
}

func TestFormModal_FieldNavigationWraps(t *testing.T) {
	keys := DefaultKeyMap()
	fm, _ := newFormModal("Add New Book", form.Input{})

	var modal Modal = fm
	modal, _, _ = modal.Update(tea.KeyMsg{Type: tea.KeyShiftTab}, keys)
	if got := modal.(formModal).focusIdx; got != len(form.Order)-1 {
		t.Fatalf("shift+tab from first field focus = %d, want last", got)
	}

	modal, _, _ = modal.Update(tea.KeyMsg{Type: tea.KeyTab}, keys)
	if got := modal.(formModal).focusIdx; got != 0 {
		t.Fatalf("tab from last field focus = %d, want 0", got)
	}

	for range len(form.Order) {
		modal, _, _ = modal.Update(tea.KeyMsg{Type: tea.KeyTab}, keys)
	}
	fm = modal.(formModal)
	if fm.focusIdx != 0 {
		t.Fatalf("full cycle focus = %d, want 0", fm.focusIdx)
	}
	for i := range fm.inputs {
		if fm.inputs[i].Focused() != (i == 0) {
			t.Fatalf("input %d focused = %v", i, fm.inputs[i].Focused())
		}
	}
}

func TestFormModal_SubmitValidInput(t *testing.T) {
	keys := DefaultKeyMap()
	fm, _ := newFormModal("Add New Book", form.Input{
		Name: " Dune ", Author: "Frank Herbert", Pages: "412", PublishDate: "1965-08-01",
	})

	_, cmd, done := fm.Update(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if !done || cmd == nil {
		t.Fatalf("done = %v, cmd nil = %v; want the form to close with a command", done, cmd == nil)
	}
	msg, ok := cmd().(formSubmittedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want formSubmittedMsg", cmd())
	}
	want := books.Fields{Name: "Dune", Author: "Frank Herbert", Pages: 412, PublishDate: "1965-08-01"}
	if msg.fields != want {
		t.Fatalf("fields = %#v, want %#v", msg.fields, want)
	}
}

func TestFormModal_InvalidFocusesFirstError(t *testing.T) {
	keys := DefaultKeyMap()
	fm, _ := newFormModal("Add New Book", form.Input{
		Name: "Dune", Author: "Frank Herbert", Pages: "0", PublishDate: "1965-08-01",
	})

	modal, _, done := fm.Update(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if done {
		t.Fatal("invalid form closed")
	}
	fm = modal.(formModal)
	if fm.focusIdx != 2 {
		t.Fatalf("focus = %d, want pages (2)", fm.focusIdx)
	}
	if got := fm.errors[form.FieldPages]; got != "Pages must be at least 1" {
		t.Fatalf("pages error = %q", got)
	}
}

func TestConfirmDeleteModal(t *testing.T) {
	keys := DefaultKeyMap()
	c := confirmDeleteModal{book: books.Book{ID: 4, Name: "Brave New World", Author: "Aldous Huxley"}}

	_, cmd, done := c.Update(tea.KeyMsg{Type: tea.KeyEscape}, keys)
	if !done || cmd != nil {
		t.Fatalf("esc: done = %v, cmd nil = %v; want close without command", done, cmd == nil)
	}

	_, _, done = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, keys)
	if done {
		t.Fatal("unrelated key closed the prompt")
	}

	_, cmd, done = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, keys)
	if !done || cmd == nil {
		t.Fatal("y should close with a command")
	}
	if msg, ok := cmd().(deleteConfirmedMsg); !ok || msg.id != 4 {
		t.Fatalf("cmd() = %#v, want deleteConfirmedMsg{4}", cmd())
	}
}
