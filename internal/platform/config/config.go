// Package config reads settings from the process environment
// Every service scopes its keys with a prefix, CORE_API_ for the http layer,
// SERVICE_STORE_ / SERVICE_PGSQL_ / SERVICE_CLICKHOUSE_ for storage
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"leadlens/internal/platform/logger"

	units "github.com/docker/go-units"
)

// Conf is a prefixed view over the environment, the zero value reads unprefixed keys
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix returns a narrower view, prefixes stack
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the full environment variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// may parses the value under k, a blank value yields def and a bad one warns and yields def
func may[T any](c Conf, k string, def T, parse func(string) (T, error)) T {
	s := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(k)).Str("value", s).Interface("default", def).Msg("invalid config value, using default")
		return def
	}
	return v
}

// MustString panics when k is unset or blank
func (c Conf) MustString(k string) string {
	v := c.lookup(k)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(k, def string) string {
	if v := c.lookup(k); v != "" {
		return v
	}
	return def
}

// MayInt returns an int setting
func (c Conf) MayInt(k string, def int) int { return may(c, k, def, strconv.Atoi) }

// MayBool accepts whatever strconv.ParseBool does
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, def, strconv.ParseBool) }

// MayDuration takes Go durations like 250ms or 1m30s
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, def, time.ParseDuration)
}

// MayBytes reads a size limit, plain numbers are bytes and suffixes follow
// binary units so 2MiB, 2MB and 2m all mean 2<<20
func (c Conf) MayBytes(k string, def int64) int64 {
	return may(c, k, def, func(s string) (int64, error) {
		n, err := units.RAMInBytes(s)
		if err == nil && n < 0 {
			return 0, strconv.ErrRange
		}
		return n, err
	})
}

// MayCSV splits a comma list, blank items are skipped
func (c Conf) MayCSV(k string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the allowed spelling of the value, matched case-insensitively
// an unknown value is a startup error and panics
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := c.MayString(k, def)
	if v == "" {
		return ""
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.Key(k)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
