package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/receipt"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg.Env)
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := dbpkg.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("database unavailable", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	tz, err := timezone.NewResolver(cfg.DefaultTimezone)
	if err != nil {
		zl.Fatal("invalid DEFAULT_TIMEZONE", zap.Error(err))
	}

	var kpiCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			zl.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			kpiCache = rc
			defer func() { _ = rc.Close() }()
		}
	}

	uploader := storage.New(cfg)

	appointments := infraRepo.NewAppointmentGormRepository(store)

	auditDispatcher := audit.NewDispatcher(audit.New(store.DB), zl)
	receipts := receipt.NewDispatcher(appointments, uploader, zl)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = 16 << 20

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Log:          zl,
		Store:        store,
		TZ:           tz,
		Cache:        kpiCache,
		Uploader:     uploader,
		Appointments: appointments,
		Sedes:        infraRepo.NewSedeGormRepository(store),
		Analytics:    infraRepo.NewAnalyticsGormRepository(store),
		Audit:        auditDispatcher,
		Receipts:     receipts,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}

	// Drain background queues before the store closes. Handlers still running
	// after a failed Shutdown have their late jobs dropped by the dispatchers.
	receipts.Close()
	auditDispatcher.Close()
}
