package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/config"
	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/handler"
	"github.com/campaignforge/campaignforge-go/internal/infra/memstore"
	"github.com/campaignforge/campaignforge-go/internal/infra/mongostore"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/infra/session"
	"github.com/campaignforge/campaignforge-go/internal/port"
	"github.com/campaignforge/campaignforge-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("use_mongo", cfg.MongoURI != ""),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.Int("warm_lead_floor", cfg.WarmLeadFloor),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "campaignforge")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Storage backend ---
	thresholds := domain.DefaultLeadThresholds()
	thresholds.Warm = cfg.WarmLeadFloor

	var store port.Storage
	if cfg.MongoURI != "" {
		logger.Info("using MongoDB as storage backend",
			zap.String("database", cfg.MongoDB),
		)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
		mongoStore, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDB, thresholds, logger)
		cancel()
		if err != nil {
			logger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoStore.Close(context.Background())
		store = mongoStore
	} else {
		logger.Info("using in-memory storage backend with demo data")
		store = memstore.New(thresholds)
	}

	// --- Sessions ---
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	// --- Services ---
	authSvc := service.NewAuthService(store, sessions, metrics, logger)
	marketingSvc := service.NewMarketingService(store, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(marketingSvc, authSvc, metrics, cfg.CORSOrigins, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
