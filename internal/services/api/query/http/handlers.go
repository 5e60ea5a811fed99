// Package http provides http transport for lead queries
package http

import (
	stdhttp "net/http"

	"leadlens/internal/modkit/httpkit"
	"leadlens/internal/services/api/query/domain"
	svc "leadlens/internal/services/api/query/service"
)

// Register mounts query endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/leads", h.leads)
	httpkit.Get(r, "/metrics", h.metrics)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /query/leads Query queryLeads
// @Summary Newest leads matching the filters
// @Tags Query
// @Produce json
// @Param from query string false "Lower created_at bound, inclusive"
// @Param to query string false "Upper created_at bound, inclusive"
// @Param source query string false "Source"
// @Param city query string false "City"
// @Param product query string false "Product"
// @Success 200 {array} lead.Lead "ok"
// @Router /query/leads [get]
func (h *handlers) leads(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.List(r.Context(), domain.ListInput{
		From:    q.Get("from"),
		To:      q.Get("to"),
		Source:  q.Get("source"),
		City:    q.Get("city"),
		Product: q.Get("product"),
	})
}

// swagger:route GET /query/metrics Query queryMetrics
// @Summary Totals, conversions, spend, amount and average CPA
// @Tags Query
// @Produce json
// @Param from query string false "Lower created_at bound, inclusive"
// @Param to query string false "Upper created_at bound, inclusive"
// @Success 200 {object} domain.Metrics "ok"
// @Router /query/metrics [get]
func (h *handlers) metrics(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.Metrics(r.Context(), domain.MetricsInput{From: q.Get("from"), To: q.Get("to")})
}
