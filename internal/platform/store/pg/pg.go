// Package pg opens the postgres pool behind the pgsql driver
package pg

import (
	"context"
	"fmt"
	"time"

	"leadlens/internal/platform/store/trace"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	SlowMs   int
}

// PG holds the pool and the tracer the sql adapter reports to
type PG struct {
	Pool   *pgxpool.Pool
	Tracer trace.QueryTracer
	SlowMs int
}

// Backoff bounds WaitReady
type Backoff struct {
	Attempts int
	Timeout  time.Duration // per ping
	Start    time.Duration
	Ceiling  time.Duration
}

// DefaultBackoff gives a freshly started container roughly half a minute
var DefaultBackoff = Backoff{Attempts: 20, Timeout: 3 * time.Second, Start: 150 * time.Millisecond, Ceiling: 2 * time.Second}

var (
	newPool  = pgxpool.NewWithConfig
	pingPool = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
)

// PoolConfig parses the url and applies the pool limits and application_name
func PoolConfig(cfg Config) (*pgxpool.Config, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	return pcfg, nil
}

// Open builds the pool, connections are dialed lazily
func Open(ctx context.Context, cfg Config, tracer trace.QueryTracer) (*PG, error) {
	pcfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg: pool: %w", err)
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// WaitReady pings until the server answers, onRetry sees each failed attempt
// pings go straight to the pool so they never show up as traced sql
func (p *PG) WaitReady(ctx context.Context, b Backoff, onRetry func(attempt int, err error)) error {
	var last error
	wait := b.Start
	for i := 1; i <= b.Attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, b.Timeout)
		last = pingPool(pctx, p.Pool)
		cancel()
		if last == nil {
			return nil
		}
		if onRetry != nil {
			onRetry(i, last)
		}
		if i == b.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, b.Ceiling)
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", b.Attempts, last)
}

// Close releases the pool, safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
