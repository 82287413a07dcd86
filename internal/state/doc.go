// Package state provides the page controller for the bookshelf screen.
//
// # Overview
//
// Page holds the two pieces of UI state the screen needs beyond the book
// list itself: which book (if any) is being edited, and whether the form is
// visible. Views never touch the store directly; they raise intents and the
// Page routes them:
//
//	List view                 Page                      books.Store
//	┌──────────────┐         ┌──────────────────┐      ┌────────────┐
//	│ edit(book)   │────────→│ Edit()           │      │            │
//	│ delete(id)   │────────→│ Delete()  ───────┼─────→│ Delete()   │
//	│ add          │────────→│ AddNew()         │      │            │
//	└──────────────┘         │                  │      │            │
//	Form view                │                  │      │            │
//	┌──────────────┐         │                  │      │            │
//	│ save(fields) │────────→│ Save()    ───────┼─────→│ Update()   │
//	│              │         │                  │      │ or Add()   │
//	│ cancel       │────────→│ Cancel()         │      │            │
//	└──────────────┘         └──────────────────┘      └────────────┘
//
// # Intent Semantics
//
//   - AddNew: clear selection, show form
//   - Edit: select the book, show form
//   - Save: update the selected book with every field, or add a new one
//     when nothing is selected; then clear selection and hide the form
//   - Delete: remove from the store; if it was the selected book, clear
//     selection and hide the form
//   - Cancel: clear selection and hide the form
//
// Save only ever receives fields that already passed form validation. The
// one miss is an edit whose book was deleted while the form was open: Save
// then reports false and the collection is unchanged. An edit never creates
// a book.
//
// # Logging
//
// Each intent that reaches the store is logged at info level through the
// injected slog.Logger. No-op deletes are logged at debug.
//
// # Concurrency
//
// Page is owned by the UI goroutine and has no locking of its own. The
// store it wraps is independently safe.
package state
