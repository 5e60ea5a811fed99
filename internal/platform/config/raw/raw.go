// Package raw reads bootstrap settings before the logger exists
// config depends on logger so logger reads its own LOG_* keys through here
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed environment view without any logging
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix narrows the view
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value or def
func (c Conf) Get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + k)); v != "" {
		return v
	}
	return def
}

// GetBool treats 1, true and yes as true, anything else set is false
func (c Conf) GetBool(k string, def bool) bool {
	switch strings.ToLower(c.Get(k, "")) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt returns a non negative int, anything else falls back to def
func (c Conf) GetInt(k string, def int) int {
	n, err := strconv.Atoi(c.Get(k, ""))
	if err != nil || n < 0 {
		return def
	}
	return n
}
