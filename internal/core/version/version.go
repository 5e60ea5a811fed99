// Package version carries the build stamp reported by /meta/version and the clickhouse client info
package version

import "runtime/debug"

// ServiceName identifies the api in build info, logs and health payloads
const ServiceName = "leadlens-api"

// BuildInfo is the /meta/version payload
type BuildInfo struct {
	Service string `json:"service" example:"leadlens-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit"  example:"4f2c1ab"`
	Date    string `json:"date"    example:"2025-09-02"`
}

// stamped with -ldflags "-X leadlens/internal/core/version.version=v0.3.0 ..."
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// Info returns the build stamp
// without an ldflags commit the short vcs revision recorded by the go tool is used
func Info() BuildInfo {
	return BuildInfo{Service: ServiceName, Version: version, Commit: Commit(), Date: date}
}

// Commit is the short revision of this build, "none" when unknown
func Commit() string {
	if commit != "" {
		return commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "none"
}
