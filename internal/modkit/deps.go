// Package modkit provides module wiring and core deps
package modkit

import (
	"leadlens/internal/modkit/repokit"
	"leadlens/internal/platform/config"
	"leadlens/internal/platform/logger"
	"leadlens/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// CH is nil unless the ClickHouse mirror is enabled
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	DB      repokit.TxRunner
	Dialect store.Dialect
	CH      store.Clickhouse
}

// FromStore copies the handles of an opened store into Deps
func FromStore(st *store.Store, cfg config.Conf) Deps {
	d := Deps{Cfg: cfg}
	if st == nil {
		return d
	}
	d.Log = st.Log
	d.DB = st.DB
	d.Dialect = st.Dialect
	d.CH = st.CH
	return d
}
