// Package middleware holds the api middleware stack, chi and go-chi/cors wrappers plus in house ones
package middleware

import (
	"net/http"
	"time"

	"leadlens/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AccessLogOptions configures the access log
type AccessLogOptions struct {
	// Slow logs requests at or above this duration as warn, 0 turns it off
	Slow time.Duration
}

func (o AccessLogOptions) level(status int, took time.Duration) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case o.Slow > 0 && took >= o.Slow:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// AccessLogZerolog writes one "request done" line per request on the request logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.C(r.Context()).WithLevel(opt.level(status, took)).
				Int("status", status).
				Dur("elapsed", took).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int64("bytes_in", r.ContentLength).
				Int("bytes_out", ww.BytesWritten()).
				Msg("request done")
		})
	}
}
