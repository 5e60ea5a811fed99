package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadlens/internal/adapters/storage/leadsql"
	"leadlens/internal/core/lead"
	perr "leadlens/internal/platform/errors"
	"leadlens/internal/platform/store"
	"leadlens/internal/platform/store/storetest"
	"leadlens/internal/services/api/query/domain"
	"leadlens/internal/services/api/query/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTimes = func() []time.Time {
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	out := make([]time.Time, 5)
	for i := range out {
		out[i] = base.Add(time.Duration(i) * time.Minute)
	}
	return out
}()

func seed(t *testing.T, st *store.Store, leads ...lead.Lead) {
	t.Helper()
	for _, l := range leads {
		_, err := store.Scalar[int64](context.Background(), st.DB, leadsql.Insert, leadsql.Args(l)...)
		require.NoError(t, err)
	}
}

func names(ls []lead.Lead) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Name)
	}
	return out
}

func newSvc(t *testing.T, limit int) (*Svc, *store.Store) {
	t.Helper()
	st := storetest.SQLite(t)
	return New(st.DB, repo.NewSQL(), limit), st
}

func TestNew_LimitClamp(t *testing.T) {
	st := storetest.SQLite(t)
	assert.Equal(t, MaxListLimit, New(st.DB, repo.NewSQL(), 0).limit)
	assert.Equal(t, MaxListLimit, New(st.DB, repo.NewSQL(), 5000).limit)
	assert.Equal(t, 10, New(st.DB, repo.NewSQL(), 10).limit)
	assert.Panics(t, func() { New(nil, repo.NewSQL(), 1) })
}

func TestMetrics_Example(t *testing.T) {
	s, st := newSvc(t, 0)
	seed(t, st,
		lead.Lead{CreatedAt: "2025-01-01T10:00:00.000Z", Spend: lead.Float(100), Amount: lead.Float(100), Conversion: "purchase"},
		lead.Lead{CreatedAt: "2025-01-01T11:00:00.000Z", Spend: lead.Float(50)},
		lead.Lead{CreatedAt: "2025-01-01T12:00:00.000Z", Spend: lead.Float(50)},
	)

	m, err := s.Metrics(context.Background(), domain.MetricsInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.Total)
	assert.Equal(t, int64(1), m.Conversions)
	assert.Equal(t, 200.0, m.Spend)
	assert.Equal(t, 100.0, m.Amount)
	require.NotNil(t, m.AvgCPA)
	assert.Equal(t, 200.0, *m.AvgCPA)
}

func TestMetrics_ZeroConversionsNullCPA(t *testing.T) {
	s, st := newSvc(t, 0)
	seed(t, st,
		lead.Lead{CreatedAt: "2025-01-01T10:00:00.000Z", Spend: lead.Float(30)},
		lead.Lead{CreatedAt: "2025-01-01T11:00:00.000Z", Conversion: "   "},
	)

	m, err := s.Metrics(context.Background(), domain.MetricsInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.Total)
	assert.Zero(t, m.Conversions)
	assert.Equal(t, 30.0, m.Spend)
	assert.Zero(t, m.Amount)
	assert.Nil(t, m.AvgCPA)
}

func TestMetrics_EmptyTable(t *testing.T) {
	s, _ := newSvc(t, 0)
	m, err := s.Metrics(context.Background(), domain.MetricsInput{From: "2030-01-01"})
	require.NoError(t, err)
	assert.Equal(t, domain.Metrics{}, m)
}

func TestMetrics_Window(t *testing.T) {
	s, st := newSvc(t, 0)
	seed(t, st,
		lead.Lead{CreatedAt: "2025-01-01T00:00:00.000Z", Spend: lead.Float(1), Conversion: "x"},
		lead.Lead{CreatedAt: "2025-02-01T00:00:00.000Z", Spend: lead.Float(2), Conversion: "x"},
		lead.Lead{CreatedAt: "2025-03-01T00:00:00.000Z", Spend: lead.Float(4), Conversion: "x"},
	)

	m, err := s.Metrics(context.Background(), domain.MetricsInput{From: "2025-02-01", To: "2025-02-28T23:59:59.999Z"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Total)
	assert.Equal(t, 2.0, m.Spend)
}

func TestList_FiltersAndOrder(t *testing.T) {
	s, st := newSvc(t, 0)
	seed(t, st,
		lead.Lead{CreatedAt: "2025-01-01T00:00:00.000Z", Name: "jan", Source: "ads", City: "Москва"},
		lead.Lead{CreatedAt: "2025-02-01T00:00:00.000Z", Name: "feb", Source: "ads", City: "Казань", Product: "sofa"},
		lead.Lead{CreatedAt: "2025-03-01T00:00:00.000Z", Name: "mar", Source: "seo", City: "Москва", Product: "sofa"},
		lead.Lead{CreatedAt: "2025-03-01T00:00:00.000Z", Name: "mar2", Source: "ads"},
	)
	ctx := context.Background()

	all, err := s.List(ctx, domain.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mar2", "mar", "feb", "jan"}, names(all))

	got, err := s.List(ctx, domain.ListInput{Source: "ads"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mar2", "feb", "jan"}, names(got))

	got, err = s.List(ctx, domain.ListInput{City: "Москва", Product: "sofa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mar"}, names(got))

	got, err = s.List(ctx, domain.ListInput{From: "2025-02-01T00:00:00.000Z", To: "2025-02-01T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"feb"}, names(got), "bounds are inclusive")

	got, err = s.List(ctx, domain.ListInput{Source: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_Limit(t *testing.T) {
	s, st := newSvc(t, 2)
	for i := 0; i < 5; i++ {
		seed(t, st, lead.Lead{CreatedAt: lead.FormatTime(fixedTimes[i]), Source: "x"})
	}
	got, err := s.List(context.Background(), domain.ListInput{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, lead.FormatTime(fixedTimes[4]), got[0].CreatedAt)
}

func TestRoundTrip_IngestedRowIsListed(t *testing.T) {
	s, st := newSvc(t, 0)
	in := lead.Normalize(lead.Input{Name: "Иван", Phone: "+77011112222", Amount: lead.Float(10), Raw: []byte(`{"a":1}`)}, fixedTimes[0])
	seed(t, st, in)

	got, err := s.List(context.Background(), domain.ListInput{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Positive(t, got[0].ID)
	got[0].ID = 0
	assert.Equal(t, in, got[0])
}

type brokenRepo struct{}

func (brokenRepo) List(context.Context, repo.Filter, int) ([]lead.Lead, error) {
	return nil, errors.New("boom")
}
func (brokenRepo) Totals(context.Context, string, string) (repo.Totals, error) {
	return repo.Totals{}, context.DeadlineExceeded
}

func TestErrorsAreMapped(t *testing.T) {
	s, _ := newSvc(t, 0)
	s.Repo = brokenRepo{}

	_, err := s.List(context.Background(), domain.ListInput{})
	assert.Equal(t, perr.ErrorCodeDB, perr.CodeOf(err))

	_, err = s.Metrics(context.Background(), domain.MetricsInput{})
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(err))
}
