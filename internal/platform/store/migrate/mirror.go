package migrate

import (
	"context"
	"fmt"
	"regexp"

	"leadlens/internal/platform/store"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// MirrorColumns is the column order of the clickhouse lead events table
var MirrorColumns = []string{
	"id", "created_at", "source", "phone", "email", "name", "city", "product",
	"status", "conversion", "utm_source", "utm_campaign", "amount", "spend", "import_id", "ingested_at",
}

const mirrorDDL = `CREATE TABLE IF NOT EXISTS %s (
	id           Int64,
	created_at   String,
	source       LowCardinality(String),
	phone        String,
	email        String,
	name         String,
	city         LowCardinality(String),
	product      LowCardinality(String),
	status       LowCardinality(String),
	conversion   String,
	utm_source   LowCardinality(String),
	utm_campaign String,
	amount       Nullable(Float64),
	spend        Nullable(Float64),
	import_id    String,
	ingested_at  DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (ingested_at, id)`

// Mirror creates the clickhouse events table when missing
func Mirror(ctx context.Context, ch store.Clickhouse, table string) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("migrate: bad clickhouse table name %q", table)
	}
	if err := ch.Exec(ctx, fmt.Sprintf(mirrorDDL, table)); err != nil {
		return fmt.Errorf("migrate: clickhouse %s: %w", table, err)
	}
	return nil
}
