package domain

import (
	"context"

	"leadlens/internal/core/lead"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]lead.Lead, error)
	Metrics(ctx context.Context, in MetricsInput) (Metrics, error)
}
