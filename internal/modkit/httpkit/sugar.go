package httpkit

import (
	"net/http"

	phttp "leadlens/internal/platform/net/http"
)

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a JSON handler under POST, the body is bound into T and validated
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	phttp.PostJSON(r, path, h, opts...)
}

// PostJSONBatch mounts a POST handler that accepts one JSON object or an array of them
func PostJSONBatch[T any](r Router, path string, h func(*http.Request, []T) (any, error), opts ...JSONOptions) {
	phttp.PostJSONBatch(r, path, h, opts...)
}

// Post mounts a POST handler that reads the body itself
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.PostRaw(r, path, h)
}
