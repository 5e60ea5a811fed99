// Package repo provides sql access for lead ingestion
package repo

import (
	"context"

	"leadlens/internal/adapters/storage/leadsql"
	"leadlens/internal/core/lead"
	"leadlens/internal/modkit/repokit"
	"leadlens/internal/platform/store"
)

// Repo is the minimal persistence surface for ingestion
type Repo interface {
	Insert(ctx context.Context, l lead.Lead) (int64, error)
	FindDuplicate(ctx context.Context, phone, email string) (*lead.Lead, error)
}

type (
	// SQL is a binder that can bind the repo to a Queryer or TxRunner
	SQL struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewSQL returns a binder, the statements run on postgres and sqlite alike
func NewSQL() repokit.Binder[Repo] { return SQL{} }

// Bind wires a Queryer to the repo
func (SQL) Bind(q repokit.Queryer) Repo { return &queries{q: repokit.RequireQueryer(q)} }

func (r *queries) Insert(ctx context.Context, l lead.Lead) (int64, error) {
	return store.Scalar[int64](ctx, r.q, leadsql.Insert, leadsql.Args(l)...)
}

func (r *queries) FindDuplicate(ctx context.Context, phone, email string) (*lead.Lead, error) {
	const sql = `
select ` + leadsql.Select + `
from leads
where ($1 <> '' and phone = $1)
or ($2 <> '' and email = $2)
order by created_at desc, id desc
limit 1
`
	l, err := store.One(ctx, r.q, leadsql.Scan, sql, phone, email)
	if store.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
