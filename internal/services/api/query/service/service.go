// Package service contains lead listing and metrics workflows
package service

import (
	"context"
	"strings"

	"leadlens/internal/core/lead"
	"leadlens/internal/modkit/repokit"
	perr "leadlens/internal/platform/errors"
	"leadlens/internal/services/api/query/domain"
	"leadlens/internal/services/api/query/repo"
)

// MaxListLimit is the hard cap on rows returned by List
const MaxListLimit = 1000

// Service defines the query service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the query service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	limit  int
}

// New constructs a query service
// limit outside 1..MaxListLimit falls back to MaxListLimit
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], limit int) *Svc {
	if db == nil {
		panic("query.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("query.Service requires a non nil Repo binder")
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, limit: limit}
}

// Limit is the effective row cap for List
func (s *Svc) Limit() int { return s.limit }

// List returns the newest leads matching every supplied filter
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]lead.Lead, error) {
	f := repo.Filter{
		From:    strings.TrimSpace(in.From),
		To:      strings.TrimSpace(in.To),
		Source:  strings.TrimSpace(in.Source),
		City:    strings.TrimSpace(in.City),
		Product: strings.TrimSpace(in.Product),
	}
	out, err := s.Repo.List(ctx, f, s.limit)
	if err != nil {
		return nil, perr.FromDB(err, "list leads failed")
	}
	return out, nil
}

// Metrics aggregates the window in a single scan
func (s *Svc) Metrics(ctx context.Context, in domain.MetricsInput) (domain.Metrics, error) {
	t, err := s.Repo.Totals(ctx, strings.TrimSpace(in.From), strings.TrimSpace(in.To))
	if err != nil {
		return domain.Metrics{}, perr.FromDB(err, "metrics failed")
	}
	m := domain.Metrics{
		Total:       t.Total,
		Conversions: t.Conversions,
		Spend:       t.Spend,
		Amount:      t.Amount,
	}
	if t.Conversions > 0 {
		cpa := t.Spend / float64(t.Conversions)
		m.AvgCPA = &cpa
	}
	return m, nil
}
