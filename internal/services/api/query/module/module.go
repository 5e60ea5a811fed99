// Package module wires lead queries into the API using modkit
package module

import (
	"leadlens/internal/modkit"
	"leadlens/internal/modkit/httpkit"
	str "leadlens/internal/platform/strings"
	queryhttp "leadlens/internal/services/api/query/http"
	queryrepo "leadlens/internal/services/api/query/repo"
	querysvc "leadlens/internal/services/api/query/service"
)

// Module implements the query module
type Module struct {
	b   modkit.Built
	svc querysvc.Service
}

// New constructs the query module, LIST_LIMIT caps listings
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("query"), modkit.WithPrefix("/query")}, opts...)...)

	svc := querysvc.New(deps.DB, queryrepo.NewSQL(), deps.Cfg.MayInt("LIST_LIMIT", querysvc.MaxListLimit))

	return &Module{b: b, svc: svc}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { queryhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
