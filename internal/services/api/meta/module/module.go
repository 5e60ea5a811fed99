// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"leadlens/internal/core/version"
	"leadlens/internal/modkit"
	"leadlens/internal/modkit/httpkit"
	modreg "leadlens/internal/modkit/module"
	str "leadlens/internal/platform/strings"

	metahttp "leadlens/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	b         modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{deps: deps, b: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: version.ServiceName,
		StartedAt:   m.startedAt,
		Dialect:     string(m.deps.Dialect),
		Modules:     modreg.Names,
	}
	// keep untyped nils so absent seams report skipped
	if m.deps.DB != nil {
		d.DB = m.deps.DB
	}
	if m.deps.CH != nil {
		d.CH = m.deps.CH
	}
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix is where MountRoutes mounts the meta routes
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
