// Package strings has the small string helpers shared by modules and sql adapters
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix cleans a mount prefix to /a or /a/b form
// the bare root is rejected, modules always live under a name
func MustPrefix(s string) string {
	p := "/" + std.Trim(std.TrimSpace(s), "/ ")
	if p == "/" {
		panic("root path is required")
	}
	return p
}

// SQLNull turns a blank string into a NULL query argument
func SQLNull(s string) any {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// Deref reads a nullable text column, NULL is ""
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
