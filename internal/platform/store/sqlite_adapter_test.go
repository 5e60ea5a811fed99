package store

import (
	"context"
	"errors"
	"testing"

	perr "leadlens/internal/platform/errors"
	"leadlens/internal/platform/store/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recTracer struct{ events []trace.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev trace.QueryEvent) { r.events = append(r.events, ev) }

func memDB(t *testing.T) (TxRunner, *recTracer) {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, Config{SQLite: SQLiteConfig{Path: ":memory:"}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })

	rec := &recTracer{}
	a := s.DB.(*sqliteAdapter)
	a.out = trace.Emitter{Tracer: rec, SlowMs: -1}

	_, err = s.DB.Exec(ctx, `create table items (id integer primary key autoincrement, name text not null, price real)`)
	require.NoError(t, err)
	return s.DB, rec
}

type item struct {
	ID    int64
	Name  string
	Price *float64
}

func scanItem(r Row) (item, error) {
	var it item
	err := r.Scan(&it.ID, &it.Name, &it.Price)
	return it, err
}

func TestSQLite_ExecQueryAndTrace(t *testing.T) {
	ctx := context.Background()
	db, rec := memDB(t)

	tag, err := db.Exec(ctx, `insert into items (name, price) values ($1, $2), ($3, $4)`, "a", 1.5, "b", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())
	assert.Equal(t, "OK 2", tag.String())

	got, err := Many(ctx, db, scanItem, `select id, name, price from items order by id`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	require.NotNil(t, got[0].Price)
	assert.Equal(t, 1.5, *got[0].Price)
	assert.Nil(t, got[1].Price)

	rows, err := db.Query(ctx, `select id, name from items`)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, rows.Columns())
	rows.Close()

	// create, insert, select, select
	require.Len(t, rec.events, 4)
	assert.Equal(t, []any{"a", 1.5, "b", nil}, rec.events[1].Args)
	assert.False(t, rec.events[1].Slow)
}

func TestSQLite_ReturningAndReusedParams(t *testing.T) {
	ctx := context.Background()
	db, _ := memDB(t)

	id, err := Scalar[int64](ctx, db, `insert into items (name, price) values ($1, $2) returning id`, "x", 2.0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// the same $n may appear more than once
	n, err := Scalar[int64](ctx, db, `select count(*) from items where ($1 = '' or name = $1) and ($2 = '' or name = $2)`, "x", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSQLite_TxCommitAndRollback(t *testing.T) {
	ctx := context.Background()
	db, _ := memDB(t)

	err := db.Tx(ctx, func(q RowQuerier) error {
		return ExecOne(ctx, q, `insert into items (name) values ($1)`, "kept")
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = db.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `insert into items (name) values ($1)`, "dropped"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	names, err := Many(ctx, db, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, `select name from items`)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, names)
}

func TestHelpers_OneAndNoRows(t *testing.T) {
	ctx := context.Background()
	db, _ := memDB(t)

	_, err := One(ctx, db, scanItem, `select id, name, price from items where id = $1`, 99)
	assert.ErrorIs(t, err, perr.ErrNotFound)
	assert.True(t, IsNoRows(err))

	_, err = Scalar[string](ctx, db, `select name from items where id = $1`, 99)
	assert.True(t, IsNoRows(err))

	_, err = db.Exec(ctx, `insert into items (name) values ('a'), ('b')`)
	require.NoError(t, err)

	it, err := One(ctx, db, scanItem, `select id, name, price from items where name = $1`, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", it.Name)

	_, err = One(ctx, db, scanItem, `select id, name, price from items`)
	assert.Error(t, err, "more than one row")

	err = ExecOne(ctx, db, `update items set price = 1`)
	assert.Error(t, err, "two rows affected")

	assert.False(t, IsNoRows(errors.New("other")))
}

func TestSQLite_ErrorsSurface(t *testing.T) {
	ctx := context.Background()
	db, rec := memDB(t)

	_, err := db.Exec(ctx, `insert into missing (x) values (1)`)
	assert.Error(t, err)
	_, err = db.Query(ctx, `select nope from items`)
	assert.Error(t, err)

	last := rec.events[len(rec.events)-1]
	assert.Error(t, last.Err)
}
