package middleware

import (
	"net/http"

	"leadlens/internal/platform/logger"
	pnet "leadlens/internal/platform/net"
)

// RequestLogger copies the request id and client ip onto the logger context
// and echoes the id back as X-Request-ID
// mount after RequestID and RealIP so both are already resolved
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pnet.RequestID(r.Context())
		if id != "" {
			w.Header().Set("X-Request-ID", id)
		}
		ctx := logger.WithRequest(r.Context(), id, pnet.ClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
