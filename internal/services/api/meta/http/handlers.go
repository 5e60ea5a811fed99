// Package http serves the liveness, readiness and build info endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"leadlens/internal/core/version"
	"leadlens/internal/modkit/httpkit"
)

// ReadyTimeout bounds each dependency ping
var ReadyTimeout = 2 * time.Second

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(context.Context) error
}

// Deps are what the meta routes report on
// DB and CH are pinged when they implement Pinger, nil means not configured
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Dialect     string
	DB          any
	CH          any

	// Modules lists the mounted api modules
	Modules func() []string
}

type handlers struct {
	Deps
	now func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{Deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", h.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.now())}, nil
}

// probe pings one dependency
func probe(ctx context.Context, name string, dep any) ReadyCheck {
	c := ReadyCheck{Name: name, Status: StatusSkipped}
	if dep == nil {
		return c
	}
	p, ok := dep.(Pinger)
	if !ok {
		c.Status = StatusUnknown
		return c
	}
	if err := p.Ping(ctx); err != nil {
		c.Status, c.Error = StatusFail, err.Error()
		return c
	}
	c.Status = StatusOK
	return c
}

// rollup fails with the database, the clickhouse mirror can only degrade
func rollup(db, ch ReadyCheck) string {
	switch {
	case db.Status == StatusFail:
		return StatusFail
	case db.Status != StatusOK, ch.Status == StatusFail, ch.Status == StatusUnknown:
		return StatusDegraded
	}
	return StatusOK
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), ReadyTimeout)
	defer cancel()

	db := probe(ctx, "db", h.DB)
	db.Kind = h.Dialect
	ch := probe(ctx, "ch", h.CH)

	return ReadyResponse{Status: rollup(db, ch), Checks: []ReadyCheck{db, ch}, Now: stamp(h.now())}, nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.now().Sub(h.StartedAt) / time.Second),
		Modules: []string{},
	}
	if h.Modules != nil {
		out.Modules = h.Modules()
	}
	return out, nil
}
