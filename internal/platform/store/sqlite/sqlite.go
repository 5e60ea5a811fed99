// Package sqlite opens the embedded single file database used for local and small deployments
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"leadlens/internal/platform/store/trace"

	// registers the "sqlite3" database/sql driver
	_ "github.com/mattn/go-sqlite3"
)

// Config configures the sqlite file
type Config struct {
	Path   string // file path or ":memory:"
	BusyMs int
	SlowMs int
}

// SQLite is a database/sql handle with optional tracer
type SQLite struct {
	DB     *sql.DB
	Tracer trace.QueryTracer
	SlowMs int
}

var openDB = sql.Open

// DSN builds the driver connection string
// WAL keeps readers off the writer's back; foreign keys are on for every connection
func DSN(cfg Config) string {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = "data.sqlite"
	}
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	if cfg.BusyMs > 0 {
		q.Set("_busy_timeout", fmt.Sprint(cfg.BusyMs))
	}
	if path != ":memory:" {
		q.Set("_journal_mode", "WAL")
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens and pings the database
// a single connection serializes writers and keeps ":memory:" databases alive across calls
func Open(ctx context.Context, cfg Config, tracer trace.QueryTracer) (*SQLite, error) {
	if p := strings.TrimSpace(cfg.Path); p != "" && p != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite dir: %w", err)
		}
	}
	db, err := openDB("sqlite3", DSN(cfg))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite open %s: %w", cfg.Path, err)
	}
	return &SQLite{DB: db, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the handle
func (s *SQLite) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
