package store

import (
	"leadlens/internal/platform/logger"
)

// Option adjusts a Store before any backend is dialed
type Option func(*Store) error

// WithLogger routes backend tracing through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithClickhouse installs a ready clickhouse seam, CHConfig is then ignored
func WithClickhouse(ch Clickhouse) Option {
	return func(s *Store) error {
		s.CH = ch
		return nil
	}
}
