package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadlens/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
)

func TestAccessLogZerolog_PassesThrough(t *testing.T) {
	cases := []struct {
		name   string
		opt    middleware.AccessLogOptions
		status int
	}{
		{"created", middleware.AccessLogOptions{}, http.StatusCreated},
		{"slow marked", middleware.AccessLogOptions{Slow: time.Nanosecond}, http.StatusOK},
		{"server error", middleware.AccessLogOptions{}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("le"))
				_, _ = io.WriteString(w, "ads")
			})
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest/leads", strings.NewReader("{}"))

			middleware.AccessLogZerolog(tc.opt)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "leads", rr.Body.String())
		})
	}
}
