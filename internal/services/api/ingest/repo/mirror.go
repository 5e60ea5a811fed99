package repo

import (
	"context"
	"time"

	"leadlens/internal/core/lead"
	"leadlens/internal/platform/store"
)

// CHMirror copies stored leads into the clickhouse events table
// rows follow migrate.MirrorColumns
type CHMirror struct {
	ch    store.Clickhouse
	table string
	now   func() time.Time
}

// NewCHMirror returns a mirror writing to table, nil when ch is nil
func NewCHMirror(ch store.Clickhouse, table string) *CHMirror {
	if ch == nil {
		return nil
	}
	return &CHMirror{ch: ch, table: table, now: time.Now}
}

// Mirror inserts one batch, empty batches and a nil mirror are no ops
func (m *CHMirror) Mirror(ctx context.Context, importID string, leads []lead.Lead) error {
	if m == nil || len(leads) == 0 {
		return nil
	}
	at := m.now().UTC()
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []any{
			l.ID, l.CreatedAt, l.Source, l.Phone, l.Email, l.Name, l.City, l.Product,
			l.Status, l.Conversion, l.UTMSource, l.UTMCampaign, l.Amount, l.Spend, importID, at,
		})
	}
	return m.ch.Insert(ctx, m.table, rows)
}
