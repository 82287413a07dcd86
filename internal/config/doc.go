// Package config loads bookshelf's startup configuration.
//
// # Overview
//
// bookshelf keeps its books in memory, so configuration is small: where to
// write the log, how verbose to be, and optionally a TOML file of books to
// start with instead of the built-in five.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookshelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	log_file = "~/.local/state/bookshelf/bookshelf.log"
//	log_level = "info"          # debug, info, warn, error
//	seed_file = "books.toml"    # relative to this file
//
// Every field is optional. Tilde expansion is performed for log_file and
// seed_file, and both are returned as absolute paths. The level is
// lower-cased here and validated by the logging package.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
package config
