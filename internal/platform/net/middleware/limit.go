package middleware

import (
	"net/http"

	perr "leadlens/internal/platform/errors"
	pnet "leadlens/internal/platform/net"
)

// BodyLimit caps request bodies at n bytes
// a declared Content-Length over the cap is refused up front, anything else
// fails on read with *http.MaxBytesError
func BodyLimit(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > n {
				pnet.WriteError(w, r, perr.Newf(perr.ErrorCodeValidation, "request body exceeds %d bytes", n))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
