// Package logtail reads the tail of the application log and splits lines
// into their parts for display.
//
// # Overview
//
// The TUI owns the terminal, so bookshelf writes its structured log to a
// file instead. The activity view reads that file back with Read and renders
// each line through Parse so it can color levels and attributes with the
// active theme.
//
// # Reading
//
// Read keeps a ring of the last maxLines lines while scanning the file once,
// so memory stays at O(maxLines) regardless of file size:
//
//	lines, err := logtail.Read("~/.local/state/bookshelf/bookshelf.log", 400)
//
// A missing file returns nil, nil; nothing has been logged yet. Other errors
// (permission denied, I/O errors) are returned wrapped.
//
// # Parsing
//
// Lines are expected in the text handler's format:
//
//	2026-10-17 21:01:05 INF book added id=6 name=Dune
//
// Parse returns the timestamp, the three letter level, the message and the
// trailing key=value attributes. Lines that do not match (panics, stray
// output) are returned with only Message set and are displayed unchanged.
package logtail
