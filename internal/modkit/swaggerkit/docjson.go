package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"

	"leadlens/internal/platform/config"
)

//go:embed openapi.json
var openapiJSON string

// docReader is swapped by tests
var docReader = func() string { return openapiJSON }

// SpecMutator edits the parsed document before it is served
type SpecMutator func(spec map[string]any)

var (
	mu       sync.RWMutex
	mutators = map[string]SpecMutator{}
)

// Register installs m under name, a later call with the same name replaces it
// mutators run in name order on every request
func Register(name string, m SpecMutator) {
	mu.Lock()
	defer mu.Unlock()
	if m == nil {
		delete(mutators, name)
		return
	}
	mutators[name] = m
}

func applyMutators(spec map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(mutators))
	for n := range mutators {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		mutators[n](spec)
	}
}

// child returns m[key] as an object, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// serveDocJSON renders the embedded document with runtime tweaks
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			info := child(spec, "info")
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + suffix
			}
		}

		schemas := child(child(spec, "components"), "schemas")
		if _, ok := schemas["ErrorResponse"]; !ok {
			schemas["ErrorResponse"] = errorSchema
		}
		eachOperation(spec, func(op map[string]any) {
			resps := child(op, "responses")
			for status, ex := range defaultErrors {
				if _, ok := resps[status]; !ok {
					resps[status] = ex
				}
			}
		})
		applyMutators(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3, which is what the bundled UI renders,
// and adds a servers entry when none is declared
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// eachOperation visits every operation object under paths
func eachOperation(spec map[string]any, fn func(op map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, op := range ops {
			if o, ok := op.(map[string]any); ok {
				fn(o)
			}
		}
	}
}

// errorSchema mirrors the envelope the middlewares write
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Standard error response",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

var defaultErrors = map[string]any{
	"400": errorExample(http.StatusBadRequest, 8, "CSV is empty"),
	"500": errorExample(http.StatusInternalServerError, 1, "panic recovered"),
}

func errorExample(status, code int, msg string) map[string]any {
	text := http.StatusText(status)
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        code,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}
