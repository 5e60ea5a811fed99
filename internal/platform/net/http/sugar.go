package http

import (
	"net/http"

	"leadlens/internal/platform/net/http/bind"
)

// GetJSON mounts a body-less JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a pure JSON handler for POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONHandler(h, opts...))
}

// PostJSONBatch mounts a POST handler accepting one object or an array
func PostJSONBatch[T any](r Router, path string, h func(*http.Request, []T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONBatchHandler(h, opts...))
}

// PostRaw mounts a POST handler that reads the body itself
func PostRaw(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, JSONHandlerNoBody(h))
}
