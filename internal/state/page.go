package state

import (
	"log/slog"

	"github.com/five82/bookshelf/internal/books"
)

// Page is the controller behind the books screen. It owns the "selected book"
// and "form visible" UI state and routes intents into the store. It is not
// safe for concurrent use; the UI goroutine owns it.
type Page struct {
	store    *books.Store
	logger   *slog.Logger
	selected *books.Book
	formOpen bool
}

// NewPage returns a controller over store. A nil logger discards output.
func NewPage(store *books.Store, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Page{store: store, logger: logger}
}

// Store returns the underlying book store.
func (p *Page) Store() *books.Store {
	return p.store
}

// Selected returns the book being edited, if any.
func (p *Page) Selected() (books.Book, bool) {
	if p.selected == nil {
		return books.Book{}, false
	}
	return *p.selected, true
}

// FormVisible reports whether the add/edit form is shown.
func (p *Page) FormVisible() bool {
	return p.formOpen
}

// FormTitle names the form according to whether a book is selected.
func (p *Page) FormTitle() string {
	if p.selected != nil {
		return "Edit Book"
	}
	return "Add New Book"
}

// AddNew opens an empty form.
func (p *Page) AddNew() {
	p.selected = nil
	p.formOpen = true
}

// Edit opens the form for b.
func (p *Page) Edit(b books.Book) {
	p.selected = &b
	p.formOpen = true
}

// Delete removes the book with id. If that book was being edited the form is
// closed as well.
func (p *Page) Delete(id int) bool {
	removed := p.store.Delete(id)
	if removed {
		p.logger.Info("book deleted", "id", id)
	} else {
		p.logger.Debug("delete ignored, no such book", "id", id)
	}
	if p.selected != nil && p.selected.ID == id {
		p.reset()
	}
	return removed
}

// Save applies validated form fields: an update of the selected book, or a
// new book when nothing is selected. It reports false when the selected book
// was removed while the form was open; the collection is then left as is.
// The selection is cleared and the form hidden afterwards.
func (p *Page) Save(f books.Fields) (books.Book, bool) {
	defer p.reset()

	if p.selected != nil {
		updated, ok := p.store.Update(books.PatchFrom(p.selected.ID, f))
		if !ok {
			p.logger.Warn("edited book no longer exists", "id", p.selected.ID)
			return books.Book{}, false
		}
		p.logger.Info("book updated", "id", updated.ID, "name", updated.Name)
		return updated, true
	}

	created := p.store.Add(f)
	p.logger.Info("book added", "id", created.ID, "name", created.Name)
	return created, true
}

// Cancel closes the form without touching the store.
func (p *Page) Cancel() {
	p.reset()
}

func (p *Page) reset() {
	p.selected = nil
	p.formOpen = false
}
