// Package ui provides the terminal user interface for bookshelf.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds view state only; every change
// to the collection goes through state.Page, which owns "selected book" and
// "form visible" and routes intents into books.Store.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View dispatch, messages and Run
//   - books.go: book table, live filter, selection kept by id
//   - form_modal.go: add/edit dialog with per-field validation messages
//   - confirm_modal.go: delete confirmation, used when prefs ask for it
//   - activity.go: tail of the log file in a viewport
//   - header.go, help.go: status line, command bar, help overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Views
//
//   - Books: table of id, name, author, pages and publish date
//   - Activity: recent log records, colored by level, optionally following
//
// Overlays (help, form, confirm) take all key input while shown.
//
// # Event Flow
//
//  1. Run() builds the Model and subscribes to the store
//  2. Key presses become page intents (AddNew, Edit, Save, Delete, Cancel)
//  3. The store notifies the subscription, which wakes a waiting command
//     with storeChangedMsg; the Model re-reads the snapshot
//  4. A periodic tick also re-reads the snapshot and, when following,
//     the log tail
//  5. Context cancellation cleanly shuts down the program
//
// The subscription never blocks: mutations happen inside Update, so the
// callback only drops a token into a one-slot channel.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Page:      state.NewPage(store, logger),
//		Logger:    logger,
//		Prefs:     userPrefs,
//		PrefsPath: prefsPath,
//		LogPath:   cfg.LogFile,
//	})
package ui
