// Package service contains lead ingestion workflows
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"leadlens/internal/adapters/ingest/csv"
	"leadlens/internal/adapters/ingest/webhook"
	"leadlens/internal/core/lead"
	"leadlens/internal/modkit/repokit"
	perr "leadlens/internal/platform/errors"
	"leadlens/internal/platform/logger"
	"leadlens/internal/services/api/ingest/domain"
	"leadlens/internal/services/api/ingest/repo"

	"github.com/google/uuid"
)

// DefaultWebhookBase is the public path webhook urls in the connector catalog start with
const DefaultWebhookBase = "/api/v1/ingest/webhook/"

// Service defines the ingest service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the ingest service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	mirror      domain.Mirror
	webhookBase string
	now         func() time.Time
	newID       func() string
}

// Option configures a Svc
type Option func(*Svc)

// WithMirror hands every stored batch to m, a nil m disables mirroring
func WithMirror(m domain.Mirror) Option {
	return func(s *Svc) { s.mirror = m }
}

// WithWebhookBase overrides DefaultWebhookBase
func WithWebhookBase(base string) Option {
	return func(s *Svc) {
		if strings.TrimSpace(base) != "" {
			s.webhookBase = base
		}
	}
}

// WithClock replaces time.Now for created_at stamping
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New constructs an ingest service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("ingest.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ingest.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:        binder.Bind(db),
		binder:      binder,
		db:          db,
		webhookBase: DefaultWebhookBase,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}

// Ingest stores producer supplied leads one row at a time
// rows stored before a failure stay stored and the count reflects them
func (s *Svc) Ingest(ctx context.Context, in []lead.Input) (int, error) {
	for i := range in {
		if !lead.ValidRaw(in[i].Raw) {
			return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "item %d: raw must be a JSON object", i), "raw")
		}
	}
	n, err := s.store(ctx, "", lead.NormalizeAll(in, s.now()))
	logger.C(ctx).Info().Int("received", len(in)).Int("inserted", n).Err(err).Msg("ingest: batch")
	return n, err
}

// IngestWebhook maps an arbitrary JSON object from an external system and stores it
// the route source always wins over a source field inside the body
func (s *Svc) IngestWebhook(ctx context.Context, source string, body []byte) (int, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return 0, perr.WithField(perr.InvalidArgf("source is required"), "source")
	}
	doc, err := webhook.Decode(body)
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeJSON, "webhook body must be a JSON object")
	}

	in := webhook.Map(source, doc, json.RawMessage(body))
	n, err := s.store(ctx, "", []lead.Lead{lead.Normalize(in, s.now())})
	logger.C(ctx).Info().Str("source", source).Int("inserted", n).Err(err).Msg("ingest: webhook")
	return n, err
}

// ImportCSV parses an uploaded export and stores every row that has an identity
// a file that cannot be read stores nothing
func (s *Svc) ImportCSV(ctx context.Context, data []byte) (domain.ImportResult, error) {
	res, err := csv.ParseBytes(data)
	if err != nil {
		return domain.ImportResult{}, perr.WithField(perr.New(perr.ErrorCodeValidation, err.Error()), "csv")
	}

	out := domain.ImportResult{
		ImportID: s.newID(),
		Dropped:  res.Dropped,
		Columns:  res.Columns,
		Unknown:  res.Unknown,
	}
	leads := lead.NormalizeAll(res.Leads, s.now())
	n, err := s.store(ctx, out.ImportID, leads)
	out.Imported = n

	logger.C(ctx).Info().
		Str("import_id", out.ImportID).
		Int("rows", res.Rows).
		Int("imported", n).
		Int("dropped", res.Dropped).
		Int("converted", converted(leads[:n])).
		Strs("unknown_columns", res.Unknown).
		Err(err).
		Msg("ingest: csv import")

	if err != nil {
		return out, err
	}
	out.Success = true
	return out, nil
}

// CheckDuplicate returns the newest lead sharing the phone or the email
// nil when both are blank or nothing matches
func (s *Svc) CheckDuplicate(ctx context.Context, q domain.DuplicateQuery) (*lead.Lead, error) {
	phone, email := strings.TrimSpace(q.Phone), strings.TrimSpace(q.Email)
	if phone == "" && email == "" {
		return nil, nil
	}
	l, err := s.Repo.FindDuplicate(ctx, phone, email)
	if err != nil {
		return nil, perr.FromDB(err, "duplicate lookup failed")
	}
	return l, nil
}

// Connectors lists the webhook integrations with their public urls
func (s *Svc) Connectors(context.Context) []domain.Connector {
	return webhook.Connectors(s.webhookBase)
}

// store inserts leads in order and stops at the first failure
// the stored prefix is mirrored either way
func (s *Svc) store(ctx context.Context, importID string, leads []lead.Lead) (int, error) {
	stored := make([]lead.Lead, 0, len(leads))
	var err error
	for i, l := range leads {
		id, e := s.Repo.Insert(ctx, l)
		if e != nil {
			err = perr.FromDB(e, fmt.Sprintf("insert lead %d failed", i))
			break
		}
		l.ID = id
		stored = append(stored, l)
	}
	s.mirrorBatch(ctx, importID, stored)
	return len(stored), err
}

func converted(leads []lead.Lead) int {
	n := 0
	for _, l := range leads {
		if l.Converted() {
			n++
		}
	}
	return n
}

func (s *Svc) mirrorBatch(ctx context.Context, importID string, leads []lead.Lead) {
	if s.mirror == nil || len(leads) == 0 {
		return
	}
	if err := s.mirror.Mirror(ctx, importID, leads); err != nil {
		logger.C(ctx).Warn().Err(err).Int("leads", len(leads)).Msg("ingest: mirror failed")
	}
}
