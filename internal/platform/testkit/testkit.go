// Package testkit holds helpers for tests that replace package level seams
// or set several environment keys at once
package testkit

import (
	"sync"
	"testing"
)

// seams are process globals so tests that swap them take turns
var seamMu sync.Mutex

// Serial holds the seam lock until the test ends
func Serial(t testing.TB) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Swap sets *target for the rest of the test, the old value comes back on cleanup
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}

// Env sets prefix+key for every entry, restored on cleanup
func Env(t testing.TB, prefix string, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(prefix+k, v)
	}
}
