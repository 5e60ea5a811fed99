package httpkit

import (
	"net/http"
	"strings"
)

// V1 is the only published api version
const V1 = "v1"

// APIPrefix turns "v1" (slashes tolerated) into "/api/v1"
func APIPrefix(version string) string {
	return "/api/" + strings.Trim(version, "/")
}

// MountAPI scopes mw to the version prefix and lets mount register routes inside it
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix(version), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}
