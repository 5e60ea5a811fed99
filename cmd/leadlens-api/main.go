// @title         leadlens API
// @version       0.1.0
// @description   Lead ingestion from JSON, webhooks and CSV plus list and metrics queries

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leadlens/internal/modkit/httpkit"
	"leadlens/internal/modkit/repokit"
	"leadlens/internal/platform/config"
	"leadlens/internal/platform/logger"
	phttp "leadlens/internal/platform/net/http"
	"leadlens/internal/platform/store"
	"leadlens/internal/platform/store/migrate"

	"leadlens/internal/services/api"
	ingestmod "leadlens/internal/services/api/ingest/module"
)

func main() {
	// .env first so LOG_* and everything else can come from it
	dotenvErr := config.LoadDotenv()
	l := logger.Get()
	if dotenvErr != nil {
		l.Panic().Err(dotenvErr).Msg("dotenv load failed")
	}

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	stCfg := root.Prefix("SERVICE_STORE_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	liteCfg := root.Prefix("SERVICE_SQLITE_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := stCfg.MayEnum("DRIVER", "sqlite", "sqlite", "pgsql")
	cfg := store.Config{
		AppName: "leadlens-api",
		Driver:  driver,
		SQLite: store.SQLiteConfig{
			Path:        liteCfg.MayString("PATH", "data.sqlite"),
			BusyMs:      liteCfg.MayInt("BUSY_MS", 5000),
			LogSQL:      liteCfg.MayBool("LOG_SQL", false),
			SlowQueryMs: liteCfg.MayInt("SLOW_MS", 500),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			Table:   chCfg.MayString("TABLE", ingestmod.DefaultMirrorTable),
			Role:    "api",
		},
	}
	if driver == "pgsql" {
		cfg.PG = store.PGConfig{
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		}
	}
	if cfg.CH.Enabled {
		cfg.CH.URL = chCfg.MustString("DBURL")
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when the database or clickhouse does not answer
	repokit.MustGuard(ctx, st)

	if stCfg.MayBool("MIGRATE", true) {
		applied, err := migrate.Up(ctx, st.DB, st.Dialect)
		if err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
		l.Info().Strs("applied", applied).Str("dialect", string(st.Dialect)).Msg("migrations done")

		if st.CH != nil {
			if err := migrate.Mirror(ctx, st.CH, cfg.CH.Table); err != nil {
				l.Panic().Err(err).Str("table", cfg.CH.Table).Msg("mirror table setup failed")
			}
		}
	}

	// listens on CORE_API_API_PORT
	srv := phttp.NewServer(apiCfg)

	// the stack limit is the outer bound, routes enforce their own tighter one
	maxBody := max(
		apiCfg.MayBytes("MAX_BODY_BYTES", ingestmod.DefaultMaxJSONBytes),
		apiCfg.MayBytes("CSV_MAX_BYTES", ingestmod.DefaultMaxCSVBytes),
	)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORSOrigins:  apiCfg.MayCSV("CORS_ORIGINS", nil),
				MaxBodyBytes: maxBody,
				Timeout:      apiCfg.MayDuration("TIMEOUT", 0),
				Slow:         apiCfg.MayDuration("SLOW", 0),
			},
			Ingest: ingestmod.Config{
				MirrorTable: cfg.CH.Table,
				WebhookBase: apiCfg.MayString("WEBHOOK_BASE", ""),
			},
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
