package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "leadlens/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Tag", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestAdaptChi_RoutesGroupsAndParams(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(tag("root"))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "ok") })
	r.Group(func(g phttp.Router) {
		g.Use(tag("group"))
		g.Post("/beacon", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
	})
	r.Route("/api/v1/ingest", func(sub phttp.Router) {
		sub.Use(tag("ingest"))
		assert.NotNil(t, sub.Mux())
		sub.Post("/webhook/{source}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.WriteString(w, phttp.URLParam(req, "source"))
		})
	})
	r.Handle("/static", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	serve := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	rr := serve(http.MethodGet, "/health")
	assert.Equal(t, "ok", rr.Body.String())
	assert.Equal(t, []string{"root"}, rr.Header().Values("X-Tag"))

	rr = serve(http.MethodPost, "/beacon")
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, []string{"root", "group"}, rr.Header().Values("X-Tag"))

	rr = serve(http.MethodPost, "/api/v1/ingest/webhook/bitrix24")
	assert.Equal(t, "bitrix24", rr.Body.String())
	assert.Equal(t, []string{"root", "ingest"}, rr.Header().Values("X-Tag"))

	assert.Equal(t, http.StatusNoContent, serve(http.MethodGet, "/static").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(http.MethodGet, "/beacon").Code)
}
