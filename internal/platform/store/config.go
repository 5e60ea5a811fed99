package store

import "strings"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	// Driver selects the sql backend, "sqlite" (default) or "pgsql"
	Driver string

	PG     PGConfig
	SQLite SQLiteConfig
	CH     CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
}

// SQLiteConfig configures the embedded database file
type SQLiteConfig struct {
	Path        string
	BusyMs      int
	LogSQL      bool
	SlowQueryMs int
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Table   string
	Role    string
}

func (c Config) dialect() Dialect {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case "", "sqlite", "sqlite3":
		return DialectSQLite
	case "pgsql", "postgres", "postgresql", "pg":
		return DialectPG
	default:
		return Dialect(c.Driver)
	}
}
