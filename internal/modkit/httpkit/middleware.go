package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"leadlens/internal/platform/net/middleware"
)

// StackOptions tunes the shared API middleware stack
type StackOptions struct {
	CORSOrigins  []string
	MaxBodyBytes int64
	Timeout      time.Duration
	Slow         time.Duration
}

// CommonStack returns the baseline middleware slice mounted in front of every module
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestLogger,

		// safety
		middleware.RecoverJSON,
		middleware.BodyLimit(o.MaxBodyBytes),

		middleware.NoCache,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// browser beacons post cross origin
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes,
		middleware.Timeout(o.Timeout),
	}
}
