// Package module is the contract every api module implements plus a process
// registry of the mounted module names, filled by api.Mount
package module

import (
	phttp "leadlens/internal/platform/net/http"
)

// Module is what api.Mount needs from a module
// it lives outside modkit so the meta module can read the registry without import cycles
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
}
