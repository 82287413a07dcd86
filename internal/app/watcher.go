package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/bookshelf/internal/books"
)

const defaultWatchInterval = 30 * time.Second

// StartWatcher launches a background goroutine that logs a summary of the
// collection whenever it changed since the previous tick. It returns
// immediately and stops when ctx is cancelled.
func StartWatcher(ctx context.Context, store *books.Store, logger *slog.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	last := store.Version()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			last = report(store, logger, last)
		}
	}()
}

// report logs one summary record if the store moved past version last and
// returns the version it saw.
func report(store *books.Store, logger *slog.Logger, last uint64) uint64 {
	snap := store.Snapshot()
	if snap.Version == last {
		return last
	}
	logger.Info("collection changed",
		"books", len(snap.Books),
		"version", snap.Version,
		"changes", snap.Version-last,
	)
	return snap.Version
}
