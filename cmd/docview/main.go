package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docview/internal/config"
	dbRedis "github.com/kailas-cloud/docview/internal/db/redis"
	"github.com/kailas-cloud/docview/internal/domain/node"
	logpkg "github.com/kailas-cloud/docview/internal/logger"
	"github.com/kailas-cloud/docview/internal/metrics"
	"github.com/kailas-cloud/docview/internal/repository/pagestore"
	chiTransport "github.com/kailas-cloud/docview/internal/transport/chi"
	"github.com/kailas-cloud/docview/internal/transport/searchapi"
	assetuc "github.com/kailas-cloud/docview/internal/usecase/asset"
	resolveuc "github.com/kailas-cloud/docview/internal/usecase/resolve"
	"github.com/kailas-cloud/docview/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting docview render service",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("store_addrs", cfg.Store.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Store.Addrs,
		Password: cfg.Store.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create record-map store", zap.Error(err))
	}
	defer store.Close()

	// Wait for the store to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Store.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Record-map store not ready", zap.Error(err))
	}
	logger.Info("Connected to record-map store")

	// Register render metrics explicitly (no init())
	metrics.RegisterRenderMetrics()

	pages := pagestore.New(store, cfg.Store.KeyPrefix, time.Duration(cfg.Store.PageTTLHours)*time.Hour)

	// Diagnostics: skipped subtrees are degradation, logged and counted.
	resolver := resolveuc.New(resolveuc.DiagnosticsFunc(func(id, reason string) {
		logger.Debug("node skipped", zap.String("id", id), zap.String("reason", reason))
		metrics.ObserveNodeSkipped(reason)
	}))

	var assetOpts []assetuc.Option
	if cfg.Render.ServerContext {
		assetOpts = append(assetOpts, assetuc.WithServerContext())
	}
	assets := assetuc.New(imageURLMapper(cfg.Render.ImageURLTemplate), assetOpts...)

	provider := searchapi.New(
		cfg.Search.BaseURL,
		searchapi.WithAPIKey(cfg.Search.APIKey),
		searchapi.WithTimeout(time.Duration(cfg.Search.TimeoutSec)*time.Second),
	)

	srv := chiTransport.NewServer(pages, provider, resolver, assets, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiTransport.RequestLogger(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	srv.Register(r)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

// imageURLMapper builds the deployment's URL-mapping collaborator.
// An empty template is the identity mapping.
func imageURLMapper(template string) assetuc.URLMapper {
	if template == "" {
		return assetuc.IdentityURLMapper()
	}
	return assetuc.URLMapperFunc(func(raw string, _ node.Node) string {
		return fmt.Sprintf(template, raw)
	})
}
