// Package swaggerkit mounts Swagger UI and serves the embedded OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "leadlens/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	// DocsPath is where the UI lives
	DocsPath = "/api/docs"
	specPath = DocsPath + "/doc.json"
)

// Mount registers the UI and the OpenAPI document, a no op when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	ui := httpSwagger.Handler(
		httpSwagger.URL(specPath),
		httpSwagger.InstanceName("leadlens"),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DeepLinking(true),
	)

	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(specPath, serveDocJSON())
	r.Handle(DocsPath+"/*", ui)
}
