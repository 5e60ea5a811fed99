package modkit

import (
	"leadlens/internal/modkit/httpkit"
)

// Option adjusts how a module is named and mounted
type Option func(*Built)

// Built is the resolved mount plan for one module
type Built struct {
	Name   string
	Prefix string
}

// WithName names the module in logs, the registry, and /meta/service
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// Build applies options in order, nil options are skipped
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// Mount opens the module prefix and registers routes inside it
// every module's MountRoutes goes through here
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(b.Prefix, register)
}
