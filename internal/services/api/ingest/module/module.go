// Package module wires lead ingestion into the API using modkit
package module

import (
	"leadlens/internal/modkit"
	"leadlens/internal/modkit/httpkit"
	"leadlens/internal/modkit/swaggerkit"
	str "leadlens/internal/platform/strings"
	ingesthttp "leadlens/internal/services/api/ingest/http"
	ingestrepo "leadlens/internal/services/api/ingest/repo"
	ingestsvc "leadlens/internal/services/api/ingest/service"
)

// DefaultMirrorTable is the clickhouse table used when SERVICE_CLICKHOUSE_TABLE is not set
const DefaultMirrorTable = "lead_events"

// Module implements the ingest module
type Module struct {
	deps modkit.Deps
	b    modkit.Built
	opt  ingesthttp.Options
	svc  ingestsvc.Service
}

// Default body caps, overridden by MAX_BODY_BYTES and CSV_MAX_BYTES
const (
	DefaultMaxJSONBytes = 2 << 20
	DefaultMaxCSVBytes  = 10 << 20
)

// Config carries settings that live outside the api config namespace
type Config struct {
	MirrorTable string
	WebhookBase string
}

// New constructs the ingest module
func New(deps modkit.Deps, cfg Config, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ingest"), modkit.WithPrefix("/ingest")}, opts...)...)

	svcOpts := []ingestsvc.Option{ingestsvc.WithWebhookBase(cfg.WebhookBase)}
	if deps.CH != nil {
		table := cfg.MirrorTable
		if table == "" {
			table = DefaultMirrorTable
		}
		svcOpts = append(svcOpts, ingestsvc.WithMirror(ingestrepo.NewCHMirror(deps.CH, table)))
	}
	svc := ingestsvc.New(deps.DB, ingestrepo.NewSQL(), svcOpts...)

	m := &Module{
		deps: deps,
		b:    b,
		opt: ingesthttp.Options{
			MaxJSONBytes: deps.Cfg.MayBytes("MAX_BODY_BYTES", DefaultMaxJSONBytes),
			MaxCSVBytes:  deps.Cfg.MayBytes("CSV_MAX_BYTES", DefaultMaxCSVBytes),
		},
		svc: svc,
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	swaggerkit.Register("ingest", describeProfiles)
	m.b.Mount(r, func(rr httpkit.Router) { ingesthttp.Register(rr, m.svc, m.opt) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
