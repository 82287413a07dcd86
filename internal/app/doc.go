// Package app provides the composition root for bookshelf.
//
// # Overview
//
// Run wires configuration, logging, preferences, the book store and the UI
// together and blocks until the user quits or the context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml
//	       ├─────> logging.Open()     Append-only log file
//	       ├─────> prefs.Load()       Theme, confirm_delete
//	       ├─────> loadSeed()         Seed file or built-in books
//	       ├─────> books.NewStore()   Shared collection
//	       ├─────> StartWatcher()     Background change summaries
//	       └─────> ui.Run()           Start TUI (blocks)
//
// # Watcher
//
// StartWatcher runs a ticker goroutine that compares the store version with
// the one it saw last. When it moved, a single "collection changed" record
// is written with the book count and how many mutations happened since the
// previous tick. Bursts of edits therefore show up once in the activity view.
//
// # Errors
//
// A bad config file, an unusable log path or an unreadable seed file stop
// startup and are returned from Run. A broken prefs file only falls back to
// defaults.
package app
