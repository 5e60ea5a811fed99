// Package repo provides sql access for lead queries
package repo

import (
	"context"

	"leadlens/internal/adapters/storage/leadsql"
	"leadlens/internal/core/lead"
	"leadlens/internal/modkit/repokit"
	"leadlens/internal/platform/store"
)

// Repo is the read surface for listings and aggregates
type Repo interface {
	List(ctx context.Context, f Filter, limit int) ([]lead.Lead, error)
	Totals(ctx context.Context, from, to string) (Totals, error)
}

// Filter holds exact match and range predicates, blank means unfiltered
type Filter struct {
	From, To              string
	Source, City, Product string
}

// Totals is the raw aggregate row
type Totals struct {
	Total       int64
	Conversions int64
	Spend       float64
	Amount      float64
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

func (r *queries) List(ctx context.Context, f Filter, limit int) ([]lead.Lead, error) {
	const sql = `
select ` + leadsql.Select + `
from leads
where ($1 = '' or created_at >= $1)
and ($2 = '' or created_at <= $2)
and ($3 = '' or source = $3)
and ($4 = '' or city = $4)
and ($5 = '' or product = $5)
order by created_at desc, id desc
limit $6
`
	out, err := store.Many(ctx, r.q, leadsql.Scan, sql, f.From, f.To, f.Source, f.City, f.Product, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []lead.Lead{}
	}
	return out, nil
}

func (r *queries) Totals(ctx context.Context, from, to string) (Totals, error) {
	// conversion counts when present and not blank, sums skip nulls
	const sql = `
select
	count(*),
	coalesce(sum(case when conversion is not null and trim(conversion) <> '' then 1 else 0 end), 0),
	coalesce(sum(spend), 0.0),
	coalesce(sum(amount), 0.0)
from leads
where ($1 = '' or created_at >= $1)
and ($2 = '' or created_at <= $2)
`
	var t Totals
	err := r.q.QueryRow(ctx, sql, from, to).Scan(&t.Total, &t.Conversions, &t.Spend, &t.Amount)
	return t, err
}
