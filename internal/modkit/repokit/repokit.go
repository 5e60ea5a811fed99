// Package repokit is the glue between module repos and the store seams
// services hold a Binder and bind it to the store at construction
package repokit

import (
	"context"
	"fmt"
	"time"

	"leadlens/internal/platform/store"
)

type (
	// Queryer is what a bound repo runs statements against
	Queryer = store.RowQuerier

	// TxRunner is the store handle services receive
	TxRunner = store.TxRunner
)

// Binder builds a repo over a Queryer
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain constructor to Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer panics on a nil q so a miswired module fails at startup
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// Guarder checks that its backends answer, *store.Store is one
type Guarder interface {
	Guard(context.Context) error
}

// GuardTimeout bounds MustGuard when ctx carries no deadline
var GuardTimeout = 5 * time.Second

// MustGuard panics unless g answers in time, used once at startup
func MustGuard(ctx context.Context, g Guarder) {
	if g == nil {
		panic("repokit: nil Guarder")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := g.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
