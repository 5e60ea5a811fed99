// Package migrate applies the embedded schema for the configured dialect
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"leadlens/internal/platform/logger"
	"leadlens/internal/platform/store"
)

//go:embed sql
var files embed.FS

const ledger = `create table if not exists schema_migrations (
	version    text primary key,
	applied_at text not null
)`

// Up applies every pending migration for dialect, each in its own transaction
// it returns the versions applied by this call
func Up(ctx context.Context, db store.TxRunner, dialect store.Dialect) ([]string, error) {
	log := logger.Named("migrate")

	pending, err := Files(dialect)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ctx, ledger); err != nil {
		return nil, fmt.Errorf("migrate: ledger: %w", err)
	}

	var applied []string
	for _, name := range pending {
		version := strings.TrimSuffix(name, ".sql")

		n, err := store.Scalar[int64](ctx, db, `select count(*) from schema_migrations where version = $1`, version)
		if err != nil {
			return applied, fmt.Errorf("migrate: check %s: %w", version, err)
		}
		if n > 0 {
			continue
		}

		body, err := files.ReadFile(path.Join("sql", string(dialect), name))
		if err != nil {
			return applied, err
		}
		err = db.Tx(ctx, func(q store.RowQuerier) error {
			for _, stmt := range Statements(string(body)) {
				if _, err := q.Exec(ctx, stmt); err != nil {
					return err
				}
			}
			return store.ExecOne(ctx, q,
				`insert into schema_migrations (version, applied_at) values ($1, $2)`,
				version, time.Now().UTC().Format(time.RFC3339))
		})
		if err != nil {
			return applied, fmt.Errorf("migrate: apply %s: %w", version, err)
		}
		log.Info().Str("dialect", string(dialect)).Str("version", version).Msg("migration applied")
		applied = append(applied, version)
	}
	return applied, nil
}

// Files lists the migration file names for dialect in apply order
func Files(dialect store.Dialect) ([]string, error) {
	entries, err := fs.ReadDir(files, path.Join("sql", string(dialect)))
	if err != nil {
		return nil, fmt.Errorf("migrate: no migrations for dialect %q", dialect)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Statements splits a migration file on ';' and drops empty pieces and comment-only lines
func Statements(body string) []string {
	var out []string
	for _, part := range strings.Split(body, ";") {
		var lines []string
		for _, l := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(l), "--") {
				continue
			}
			lines = append(lines, l)
		}
		if s := strings.TrimSpace(strings.Join(lines, "\n")); s != "" {
			out = append(out, s)
		}
	}
	return out
}
