package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"dossier/internal/analyzer"
	"dossier/internal/phase"
	"dossier/internal/platform/config"
	"dossier/internal/platform/httpserver"
	"dossier/internal/platform/logger"
	platformmetrics "dossier/internal/platform/metrics"
	platformredis "dossier/internal/platform/redis"
	"dossier/internal/process/handler"
	processmetrics "dossier/internal/process/metrics"
	"dossier/internal/process/ports"
	"dossier/internal/process/service"
	pendingstore "dossier/internal/process/store/pending"
	processstore "dossier/internal/process/store/process"
	auditpkg "dossier/pkg/platform/audit"
	auditpublisher "dossier/pkg/platform/audit/publisher"
	auditmemory "dossier/pkg/platform/audit/store/memory"
	auditpostgres "dossier/pkg/platform/audit/store/postgres"
	auditworker "dossier/pkg/platform/audit/worker"
	"dossier/pkg/platform/middleware/requestid"
	"dossier/pkg/platform/middleware/requesttime"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	// Process store: postgres when configured, in-memory for local runs.
	var processes ports.ProcessStore
	var auditStore auditpkg.Store
	if cfg.Postgres.URL != "" {
		db, err := sql.Open("postgres", cfg.Postgres.URL)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}
		processes = processstore.NewPostgres(db)
		auditStore = auditpostgres.New(db)
	} else {
		log.Warn("no postgres configured, using in-memory process store")
		processes = processstore.NewInMemory()
		auditStore = auditmemory.New()
	}

	// Pending-patch retention: redis when configured, else process-local.
	var pending ports.PendingPatchStore
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		pending = pendingstore.NewRedis(redisClient.Client, config.PendingPatchTTL)
	} else {
		log.Warn("no redis configured, pending patches will not survive restarts")
		pending = pendingstore.NewInMemory()
	}

	publisher := auditpublisher.NewBuffered(256, log)
	worker := auditworker.New(auditStore, publisher.Inbox(), log)

	analyzerClient := analyzer.New(cfg.Analyzer.BaseURL, cfg.Analyzer.APIKey, cfg.Analyzer.Timeout)

	svc, err := service.New(processes, analyzerClient, pending, phase.Default(),
		service.WithLogger(log),
		service.WithMetrics(processmetrics.New()),
		service.WithAuditPublisher(publisher),
	)
	if err != nil {
		log.Error("service construction failed", "error", err)
		os.Exit(1)
	}

	httpMetrics := platformmetrics.New()

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(requestid.Middleware)
	router.Use(requesttime.Middleware)
	router.Use(httpMetrics.Middleware)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", platformmetrics.Handler())
	handler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Server.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting dossier", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
