package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/config"
	"github.com/five82/bookshelf/internal/logging"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
	"github.com/five82/bookshelf/internal/ui"
)

// Options configure the bookshelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookshelf/prefs.toml
	SeedPath   string // overrides seed_file from the config
	PollEvery  int    // seconds; zero uses default
}

// Run boots the bookshelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	seed, source, err := loadSeed(opts.SeedPath, cfg.SeedFile)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}

	store := books.NewStore(seed)
	logger.Info("bookshelf started", "books", store.Len(), "seed", source)

	interval := ui.DefaultUIInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Summaries go to the same log the activity view reads.
	StartWatcher(ctx, store, logger, defaultWatchInterval)

	uiOpts := ui.Options{
		Context:   ctx,
		Page:      state.NewPage(store, logger),
		Logger:    logger,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogFile,
		PollTick:  interval,
	}
	err = ui.Run(uiOpts)
	logger.Info("bookshelf stopped", "books", store.Len(), "version", store.Version())
	return err
}

// loadSeed picks the starting books: an explicit path wins over the config,
// and with neither the built-in books are used. source names where they came from.
func loadSeed(flagPath, configPath string) (seed []books.Book, source string, err error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return books.DefaultSeed(), "built-in", nil
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, "", fmt.Errorf("seed path: %w", err)
	}
	seed, err = books.LoadSeed(expanded)
	if err != nil {
		return nil, "", fmt.Errorf("load seed: %w", err)
	}
	return seed, expanded, nil
}
