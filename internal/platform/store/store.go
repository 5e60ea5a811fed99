// Package store opens the lead database (sqlite or postgres) and the optional clickhouse mirror
package store

import (
	"context"
	"errors"
	"fmt"

	"leadlens/internal/platform/logger"
)

// Dialect names the sql backend behind Store.DB
type Dialect string

// Supported dialects
const (
	DialectPG     Dialect = "pgsql"
	DialectSQLite Dialect = "sqlite"
)

// Store bundles the opened backends
type Store struct {
	Log     logger.Logger
	DB      TxRunner
	Dialect Dialect

	// CH is nil unless the mirror is enabled
	CH Clickhouse
}

var sqlOpeners = map[Dialect]func(context.Context, Config, *Store) (TxRunner, error){
	DialectPG:     openPG,
	DialectSQLite: openSQLite,
}

// Open dials the configured sql backend and, when enabled, clickhouse
// a clickhouse failure closes the sql side before returning
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	d := cfg.dialect()
	open, ok := sqlOpeners[d]
	if !ok {
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
	db, err := open(ctx, cfg, s)
	if err != nil {
		return nil, err
	}
	s.DB, s.Dialect = db, d

	if cfg.CH.Enabled && s.CH == nil {
		if s.CH, err = openCH(ctx, cfg, s); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

// Guard pings every seam that supports it and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	seams := []struct {
		name string
		seam any
	}{{"db", s.DB}, {"ch", s.CH}}
	for _, c := range seams {
		if p, ok := c.seam.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close releases clickhouse first, then the sql handle
func (s *Store) Close(context.Context) error {
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.DB.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
