// Package books holds the book collection and the rules for assigning ids.
//
// # Overview
//
// Store is the single source of truth for the books the application shows.
// Everything else (list view, form, page controller) reads snapshots from it
// and routes user intents back through its mutators. Nothing outside the
// package can reach the underlying slice.
//
// # Id Assignment
//
// Ids are assigned by the store, never by callers:
//
//	NextID() = max(live ids) + 1   // or 1 when the collection is empty
//
// The value is derived on every call rather than kept as a counter. Deleting
// the highest id and then adding a book therefore reissues that id; deleting
// a lower id never causes a collision with a live book.
//
//	seed {1,2,3,4,5}  Delete(3)  →  {1,2,4,5}
//	Add(...)                     →  id 6, {1,2,4,5,6}
//
// # Operations
//
//   - List / Snapshot: copies, safe to keep and render
//   - Get / Exists: linear scans; absence is a false result, never an error
//   - Add: appends at the end
//   - Update: merges non-nil Patch fields in place, position preserved
//   - Delete: removes exactly one element, idempotent
//
// # Observing Changes
//
// Subscribe registers a callback that receives a fresh Snapshot after every
// successful mutation. Version increases with each mutation so readers can
// tell whether a snapshot they hold is stale.
//
// # Concurrency
//
// The UI is the only writer. The RWMutex keeps snapshots whole if a
// background reader is ever added; subscriber callbacks run after the lock
// is released so they may call back into the store.
package books
