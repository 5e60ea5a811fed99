package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadlens/internal/platform/logger"
	"leadlens/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_AnnotatesContext(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.C(r.Context()).Output(&buf)
		l.Info().Msg("inside")
	})

	h := middleware.RequestID(middleware.RealIP(middleware.RequestLogger(next)))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-7")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "rid-7", rr.Header().Get("X-Request-ID"))

	out := buf.String()
	assert.Contains(t, out, `"request_id":"rid-7"`)
	assert.Contains(t, out, `"client_ip":"203.0.113.9"`)
}
