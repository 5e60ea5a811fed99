package domain

import (
	"context"

	"leadlens/internal/core/lead"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Ingest(ctx context.Context, in []lead.Input) (int, error)
	IngestWebhook(ctx context.Context, source string, body []byte) (int, error)
	ImportCSV(ctx context.Context, data []byte) (ImportResult, error)
	CheckDuplicate(ctx context.Context, q DuplicateQuery) (*lead.Lead, error)
	Connectors(ctx context.Context) []Connector
}

// Mirror receives leads after they were stored
// importID is empty outside CSV imports
type Mirror interface {
	Mirror(ctx context.Context, importID string, leads []lead.Lead) error
}
