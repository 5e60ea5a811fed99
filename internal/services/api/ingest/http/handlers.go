// Package http provides http transport for lead ingestion
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"leadlens/internal/core/lead"
	"leadlens/internal/modkit/httpkit"
	"leadlens/internal/services/api/ingest/domain"
	svc "leadlens/internal/services/api/ingest/service"
)

// Options tune request parsing
type Options struct {
	// MaxJSONBytes caps /leads and /webhook bodies, 0 means the bind default
	MaxJSONBytes int64
	// MaxCSVBytes caps /csv uploads, 0 means the bind default
	MaxCSVBytes int64
}

// Register mounts ingest endpoints on the given router
func Register(r httpkit.Router, s svc.Service, o Options) {
	h := &handlers{svc: s, opt: o}

	// producers and the tracking script, unknown fields are ignored
	httpkit.PostJSONBatch[lead.Input](r, "/leads", h.leads, httpkit.JSONOptions{MaxBytes: o.MaxJSONBytes})

	httpkit.Post(r, "/webhook/{source}", h.webhook)
	httpkit.Post(r, "/csv", h.csv)

	httpkit.Get(r, "/duplicate", h.duplicate)
	httpkit.Get(r, "/connectors", h.connectors)
}

type handlers struct {
	svc svc.Service
	opt Options
}

// swagger:route POST /ingest/leads Ingest ingestLeads
// @Summary Store one lead or a batch
// @Tags Ingest
// @Accept json
// @Produce json
// @Param payload body lead.Input true "Lead or array of leads"
// @Success 201 {object} domain.LeadsResult "created"
// @Router /ingest/leads [post]
func (h *handlers) leads(r *stdhttp.Request, in []lead.Input) (any, error) {
	n, err := h.svc.Ingest(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.LeadsResult{Inserted: n}), nil
}

// swagger:route POST /ingest/webhook/{source} Ingest ingestWebhook
// @Summary Receive a webhook from an external system
// @Tags Ingest
// @Accept json
// @Produce json
// @Param source path string true "Source id"
// @Success 201 {object} domain.WebhookResult "created"
// @Router /ingest/webhook/{source} [post]
func (h *handlers) webhook(r *stdhttp.Request) (any, error) {
	source := httpkit.URLParam(r, "source")
	body, err := httpkit.Body(r, httpkit.JSONOptions{MaxBytes: h.opt.MaxJSONBytes})
	if err != nil {
		return nil, err
	}
	n, err := h.svc.IngestWebhook(r.Context(), source, body)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.WebhookResult{OK: true, Source: source, Inserted: n}), nil
}

// swagger:route POST /ingest/csv Ingest ingestCSV
// @Summary Import a CSV export
// @Tags Ingest
// @Accept multipart/form-data
// @Produce json
// @Param csv formData file true "CSV file"
// @Success 200 {object} domain.ImportResult "ok"
// @Router /ingest/csv [post]
func (h *handlers) csv(r *stdhttp.Request) (any, error) {
	data, err := httpkit.Upload(r, "csv", h.opt.MaxCSVBytes)
	if err != nil {
		return nil, err
	}
	return h.svc.ImportCSV(r.Context(), data)
}

// swagger:route GET /ingest/duplicate Ingest ingestDuplicate
// @Summary Newest lead sharing a phone or email
// @Tags Ingest
// @Produce json
// @Param phone query string false "Phone"
// @Param email query string false "Email"
// @Success 200 {object} lead.Lead "lead or null"
// @Router /ingest/duplicate [get]
func (h *handlers) duplicate(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	l, err := h.svc.CheckDuplicate(r.Context(), domain.DuplicateQuery{Phone: q.Get("phone"), Email: q.Get("email")})
	if err != nil {
		return nil, err
	}
	if l == nil {
		// data is an explicit null when nothing matches
		return json.RawMessage("null"), nil
	}
	return l, nil
}

// swagger:route GET /ingest/connectors Ingest ingestConnectors
// @Summary Webhook integration catalog
// @Tags Ingest
// @Produce json
// @Success 200 {array} domain.Connector "ok"
// @Router /ingest/connectors [get]
func (h *handlers) connectors(r *stdhttp.Request) (any, error) {
	return h.svc.Connectors(r.Context()), nil
}
