package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/api/http/middleware"
	rateshttp "mono-statements/internal/api/http/rates"
	statementshttp "mono-statements/internal/api/http/statements"
	"mono-statements/internal/monobank"
	"mono-statements/internal/postgresql"
	"mono-statements/internal/rediscache"
	"mono-statements/internal/service/statements"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Refresh rates on a schedule and serve the local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	client, err := a.client()
	if err != nil {
		return err
	}

	pool, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	// warm the converter from the last stored snapshot
	ratesStorage := postgresql.NewRatesStorage(pool)
	if snap, err := ratesStorage.LatestSnapshot(ctx); err != nil {
		logger.Warn("load stored rates failed", zap.Error(err))
	} else if snap != nil {
		client.Restore(snap)
		logger.Info("rates restored", zap.Time("fetched_at", snap.FetchedAt), zap.Int("pairs", len(snap.Rates)))
	}

	refreshRates := func(ctx context.Context) {
		snap, err := client.FetchAndSaveRates(ctx, ratesStorage)
		if err != nil {
			logger.Warn("rates refresh failed", zap.Error(err))
			return
		}
		logger.Info("rates updated", zap.Int("pairs", len(snap.Rates)))

		if n, err := ratesStorage.PruneSnapshots(ctx, cfg.KeepSnapshots); err != nil {
			logger.Warn("prune snapshots failed", zap.Error(err))
		} else if n > 0 {
			logger.Debug("snapshots pruned", zap.Int64("deleted", n))
		}
	}
	refreshRates(ctx)

	var cache statements.Cache
	if len(cfg.RedisAddrs) > 0 {
		rc := rediscache.New(cfg.RedisAddrs, cfg.RedisPassword)
		defer func() { _ = rc.Close() }()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rc.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, statements are not cached", zap.Strings("addrs", cfg.RedisAddrs), zap.Error(err))
		} else {
			cache = rc
		}
	}

	svc := statements.New(client, cache, cfg.StatementsTTL, logger)
	if info, err := svc.Refresh(ctx); err != nil {
		logger.Warn("initial user info fetch failed", zap.Error(err))
	} else {
		logger.Info("user info loaded", zap.String("client_id", info.ClientID), zap.Int("accounts", len(info.Accounts)))
	}

	router := newRouter(
		cfg.CORSOrigins,
		client,
		svc,
		internal.NewStorageAuditLogger(postgresql.NewRequestLogStorage(pool)),
		internal.NewAPIKeyValidator(postgresql.NewAPIKeyStorage(pool), cfg.EncodingKey),
	)

	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return fmt.Errorf("load location %s: %w", cfg.Location, err)
	}
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)

	g, gctx := errgroup.WithContext(ctx)

	_, err = scheduler.AddFunc(cfg.CronSpec, func() { refreshRates(gctx) })
	if err != nil {
		return fmt.Errorf("add cron func: %w", err)
	}

	g.Go(func() error {
		return runCron(gctx, scheduler)
	})

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.HTTPPort, router, logger)
	})

	logger.Info("running, stop with Ctrl+C / SIGTERM", zap.String("rates_cron", cfg.CronSpec))
	return g.Wait()
}

func newRouter(origins []string, client *monobank.Client, svc *statements.Service, audit internal.RequestAuditLogger, keys internal.APIKeyValidator) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	if len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
			MaxAge:         300,
		}))
	}

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(keys))
		rateshttp.New(client, svc, audit).Register(r)
		statementshttp.New(svc, audit).Register(r)
	})
	return r
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, addr string, h http.Handler, logger *zap.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("HTTP listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
