package modkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadlens/internal/modkit/httpkit"
	"leadlens/internal/platform/config"
	phttp "leadlens/internal/platform/net/http"
	"leadlens/internal/platform/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	assert.Empty(t, b.Name)
	assert.Empty(t, b.Prefix)
}

func TestBuild_OptionsApplyInOrder(t *testing.T) {
	b := Build(
		WithName("ingest"),
		WithPrefix("/ingest"),
		nil,
		WithName("query"),
	)
	assert.Equal(t, "query", b.Name)
	assert.Equal(t, "/ingest", b.Prefix)
}

func TestBuilt_Mount(t *testing.T) {
	b := Build(WithPrefix("/query"))

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(sub httpkit.Router) {
		sub.Get("/leads", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "[]") })
	})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/query/leads", nil))
	assert.Equal(t, "[]", rr.Body.String())

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/leads", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code, "routes stay inside the prefix")
}

func TestFromStore(t *testing.T) {
	cfg := config.New().Prefix("CORE_API_")
	d := FromStore(nil, cfg)
	assert.Nil(t, d.DB)
	assert.Equal(t, cfg, d.Cfg)

	st := &store.Store{Dialect: store.DialectSQLite}
	d = FromStore(st, cfg)
	assert.Equal(t, store.DialectSQLite, d.Dialect)
	assert.Nil(t, d.CH)
}
