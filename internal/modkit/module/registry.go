package module

import (
	"slices"
	"sync"
)

var (
	mu      sync.RWMutex
	mounted = map[string]struct{}{}
)

// Register records that the module called name is mounted, repeats are no ops
func Register(name string) {
	mu.Lock()
	defer mu.Unlock()
	mounted[name] = struct{}{}
}

// Names lists registered modules in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(mounted))
	for n := range mounted {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Reset empties the registry, tests mount the api more than once
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(mounted)
}
