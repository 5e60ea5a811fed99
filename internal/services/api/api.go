// Package api provides the HTTP API for the application
package api

import (
	"leadlens/internal/platform/config"
	phttp "leadlens/internal/platform/net/http"
	"leadlens/internal/platform/net/middleware"
	"leadlens/internal/platform/store"

	"leadlens/internal/modkit"
	"leadlens/internal/modkit/httpkit"
	"leadlens/internal/modkit/module"
	"leadlens/internal/modkit/swaggerkit"

	ingestmod "leadlens/internal/services/api/ingest/module"
	metamod "leadlens/internal/services/api/meta/module"
	querymod "leadlens/internal/services/api/query/module"
)

// Options are the API options
type Options struct {
	// Config is the CORE_API_ view modules read their settings from
	Config         config.Conf
	Store          *store.Store
	EnableSwagger  bool
	EnableProfiler bool

	Stack  httpkit.StackOptions
	Ingest ingestmod.Config
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.FromStore(opt.Store, opt.Config)

	mods := []module.Module{
		metamod.New(deps),
		ingestmod.New(deps, opt.Ingest),
		querymod.New(deps),
	}

	// load balancer probe outside the api scope and its stack
	r.Use(middleware.Heartbeat("/health"))

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPI(r, httpkit.V1, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			// /meta/service lists what got mounted
			module.Register(m.Name())
			m.MountRoutes(api)
		}
	})
}
