// Package repository persists project records to SQLite.
package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// Config configures the record store connection.
type Config struct {
	// Path is the database file; ignored when InMemory is set.
	Path        string
	InMemory    bool
	BusyTimeout time.Duration
}

// Open opens (or creates) the SQLite database and applies pragmas.
func Open(cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := cfg.Path
	if cfg.InMemory {
		dsn = "file::memory:?cache=shared"
	}
	logger.Info("opening record store", "dsn", dsn, "inmem", cfg.InMemory)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d;", busy.Milliseconds()),
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}
	return db, nil
}
