package middleware

import (
	"net/http"
	"time"

	pstrings "leadlens/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// chi middlewares re-exported so services only import this package
var (
	// RequestID honors an inbound X-Request-ID or mints one
	RequestID = chimw.RequestID
	// RealIP rewrites RemoteAddr from X-Forwarded-For / X-Real-IP
	RealIP       = chimw.RealIP
	NoCache      = chimw.NoCache
	StripSlashes = chimw.StripSlashes
	Heartbeat    = chimw.Heartbeat
)

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Compress gzips and deflates responses at level
func Compress(level int) func(http.Handler) http.Handler {
	return chimw.NewCompressor(level).Handler
}

// CORSOptions is the part of go-chi/cors the api exposes
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS lets tracking beacons post from customer sites, every origin is allowed unless narrowed
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	maxAge := o.MaxAge
	if maxAge <= 0 {
		maxAge = 300
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         maxAge,
	})
}
