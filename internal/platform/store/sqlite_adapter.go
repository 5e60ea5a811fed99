package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"leadlens/internal/platform/store/sqlite"
	"leadlens/internal/platform/store/trace"
)

// sqliteAdapter wraps a database/sql handle and implements TxRunner
type sqliteAdapter struct {
	s   *sqlite.SQLite
	out trace.Emitter
}

func newSQLiteAdapter(s *sqlite.SQLite) *sqliteAdapter {
	return &sqliteAdapter{s: s, out: trace.Emitter{Tracer: s.Tracer, SlowMs: s.SlowMs}}
}

// execer is what both *sql.DB and *sql.Tx offer
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.s == nil || a.s.DB == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.s.DB.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.s.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return sqliteExec(ctx, a.s.DB, a.out, sql, args)
}

func (a *sqliteAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return sqliteQuery(ctx, a.s.DB, a.out, sql, args)
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return sqliteQueryRow(ctx, a.s.DB, a.out, sql, args)
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqliteTxQuerier{tx: tx, out: a.out}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type sqliteTxQuerier struct {
	tx  *sql.Tx
	out trace.Emitter
}

func (t sqliteTxQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return sqliteExec(ctx, t.tx, t.out, sql, args)
}

func (t sqliteTxQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return sqliteQuery(ctx, t.tx, t.out, sql, args)
}

func (t sqliteTxQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return sqliteQueryRow(ctx, t.tx, t.out, sql, args)
}

func sqliteExec(ctx context.Context, e execer, out trace.Emitter, q string, args []any) (CommandTag, error) {
	start := time.Now()
	res, err := e.ExecContext(ctx, q, args...)
	out.Emit(ctx, q, args, start, err)
	if err != nil {
		return sqliteTag{}, err
	}
	n, _ := res.RowsAffected()
	return sqliteTag{n: n}, nil
}

func sqliteQuery(ctx context.Context, e execer, out trace.Emitter, q string, args []any) (Rows, error) {
	start := time.Now()
	rs, err := e.QueryContext(ctx, q, args...)
	out.Emit(ctx, q, args, start, err)
	if err != nil {
		return nil, err
	}
	return &sqliteRows{r: rs}, nil
}

func sqliteQueryRow(ctx context.Context, e execer, out trace.Emitter, q string, args []any) Row {
	start := time.Now()
	r := e.QueryRowContext(ctx, q, args...)
	return sqliteRow{r: r, after: func(scanErr error) {
		out.Emit(ctx, q, args, start, scanErr)
	}}
}

type sqliteRow struct {
	r     *sql.Row
	after func(error)
}

func (x sqliteRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type sqliteRows struct {
	r    *sql.Rows
	cols []string
}

func (x *sqliteRows) Next() bool            { return x.r.Next() }
func (x *sqliteRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x *sqliteRows) Err() error            { return x.r.Err() }
func (x *sqliteRows) Close()                { _ = x.r.Close() }
func (x *sqliteRows) Columns() []string {
	if x.cols == nil {
		x.cols, _ = x.r.Columns()
	}
	return x.cols
}

type sqliteTag struct{ n int64 }

func (t sqliteTag) String() string      { return fmt.Sprintf("OK %d", t.n) }
func (t sqliteTag) RowsAffected() int64 { return t.n }
