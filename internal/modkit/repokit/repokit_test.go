package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type leadCounter struct{ q Queryer }

func TestBindFunc(t *testing.T) {
	var b Binder[*leadCounter] = BindFunc[*leadCounter](func(q Queryer) *leadCounter {
		return &leadCounter{q: RequireQueryer(q)}
	})
	assert.Panics(t, func() { b.Bind(nil) })
}

type fakeGuard struct {
	err      error
	deadline time.Time
	ok       bool
}

func (f *fakeGuard) Guard(ctx context.Context) error {
	f.deadline, f.ok = ctx.Deadline()
	return f.err
}

func TestMustGuard(t *testing.T) {
	g := &fakeGuard{}
	assert.NotPanics(t, func() { MustGuard(context.Background(), g) })
	assert.True(t, g.ok, "default deadline applied")
	assert.WithinDuration(t, time.Now().Add(GuardTimeout), g.deadline, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	want, _ := ctx.Deadline()
	MustGuard(ctx, g)
	assert.Equal(t, want, g.deadline, "caller deadline kept")

	assert.PanicsWithError(t, "dependency guard failed: sqlite: disk I/O error", func() {
		MustGuard(context.Background(), &fakeGuard{err: errors.New("sqlite: disk I/O error")})
	})
	assert.Panics(t, func() { MustGuard(context.Background(), nil) })
}
