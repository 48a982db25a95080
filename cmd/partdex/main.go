package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/config"
	dbRedis "github.com/partdex/partdex/internal/db/redis"
	logpkg "github.com/partdex/partdex/internal/logger"
	"github.com/partdex/partdex/internal/metrics"
	budgetrepo "github.com/partdex/partdex/internal/repository/budget"
	"github.com/partdex/partdex/internal/repository/enhcache"
	learningrepo "github.com/partdex/partdex/internal/repository/learning"
	partsrepo "github.com/partdex/partdex/internal/repository/parts"
	chiTransport "github.com/partdex/partdex/internal/transport/chi"
	openaiEnh "github.com/partdex/partdex/internal/transport/openai"
	"github.com/partdex/partdex/internal/usecase/enhance"
	"github.com/partdex/partdex/internal/usecase/health"
	queryuc "github.com/partdex/partdex/internal/usecase/query"
	"github.com/partdex/partdex/internal/version"
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

	logger.Info("Starting partdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.Bool("enhancer_configured", cfg.Enhancer.APIKey != ""),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	partsRepo := partsrepo.New(store)
	learningRepo := learningrepo.New(store)

	// Enhancer is nil-safe: without an API key it reports disabled and the
	// engine runs local-only.
	enhancer := openaiEnh.NewEnhancer(&openaiEnh.Config{
		APIKey:  cfg.Enhancer.APIKey,
		BaseURL: cfg.Enhancer.BaseURL,
		Model:   cfg.Enhancer.Model,
		Logger:  logger,
	})

	// When enabled, the enhancer is wrapped with an intent cache and a
	// token budget: cache hits skip the model, the budget caps the spend.
	var queryEnhancer queryuc.Enhancer = enhancer
	if enhancer.Enabled() {
		budgetStore := budgetrepo.New(store, 48*time.Hour, 62*24*time.Hour)
		tracker := enhance.NewBudgetTracker(
			cfg.Enhancer.DailyTokenLimit, cfg.Enhancer.MonthlyTokenLimit,
			enhance.BudgetAction(cfg.Enhancer.BudgetAction), logger,
		).WithStore(ctx, budgetStore)

		cached := enhcache.New(
			enhancer, store, cfg.Enhancer.Model,
			time.Duration(cfg.Enhancer.CacheTTLSec)*time.Second,
			metrics.EnhancerCacheTotal, logger,
		)
		queryEnhancer = enhance.NewInstrumentedEnhancer(cached, cfg.Enhancer.Model, tracker, logger)
	}

	querySvc := queryuc.New(
		queryEnhancer, learningRepo, partsRepo,
		time.Duration(cfg.Enhancer.TimeoutSec)*time.Second, logger,
	)
	healthSvc := health.New(store, queryEnhancer)

	server := chiTransport.NewServer(querySvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
