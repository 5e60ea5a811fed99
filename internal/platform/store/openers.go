package store

import (
	"context"

	chx "leadlens/internal/platform/store/ch"
	"leadlens/internal/platform/store/pg"
	"leadlens/internal/platform/store/sqlite"
	"leadlens/internal/platform/store/trace"
)

// openPG opens pg, waits for the server, and wraps it with our sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer trace.QueryTracer
	if cfg.PG.LogSQL {
		tracer = trace.Tracer(s.Log, "pg")
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}

	err = p.WaitReady(ctx, pg.DefaultBackoff, func(attempt int, err error) {
		s.Log.Warn().Err(err).Int("attempt", attempt).Msg("postgres not ready")
	})
	if err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

// openSQLite opens the database file with a single connection
func openSQLite(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer trace.QueryTracer
	if cfg.SQLite.LogSQL {
		tracer = trace.Tracer(s.Log, "sqlite")
	}
	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:   cfg.SQLite.Path,
		BusyMs: cfg.SQLite.BusyMs,
		SlowMs: cfg.SQLite.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}
	return newSQLiteAdapter(db), nil
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
