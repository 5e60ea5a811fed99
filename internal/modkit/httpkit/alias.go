// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "leadlens/internal/platform/net/http"
	"leadlens/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// JSONOptions controls body parsing for JSON endpoints
	JSONOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// URLParam returns a path parameter captured by the router
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// Body reads the raw request body with the JSON size rules
func Body(r *http.Request, opts ...JSONOptions) ([]byte, error) { return bind.Body(r, opts...) }

// Upload reads a file from a multipart field or from the raw body
func Upload(r *http.Request, field string, maxBytes int64) ([]byte, error) {
	return bind.Upload(r, field, maxBytes)
}

// Handle lets you directly adapt a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
