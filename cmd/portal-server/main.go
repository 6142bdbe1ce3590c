// Package main is the entry point for the printer portal server.
// The portal is a multi-tenant backend for tracking 3D printers, print jobs,
// ink refills and ink inventory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prn-tf/printer-portal/internal/auth"
	"github.com/prn-tf/printer-portal/internal/config"
	"github.com/prn-tf/printer-portal/internal/handler"
	"github.com/prn-tf/printer-portal/internal/metrics"
	"github.com/prn-tf/printer-portal/internal/ratelimit"
	mongorepo "github.com/prn-tf/printer-portal/internal/repository/mongo"
	"github.com/prn-tf/printer-portal/internal/service"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger := setupLogger(cfg.Logging)
	log.Logger = logger

	logger.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("starting printer portal server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()
	client, db, err := mongorepo.Connect(connectCtx, cfg.Database.URI, cfg.Database.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	if err := mongorepo.EnsureIndexes(connectCtx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	// Redis (optional)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr(),
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			PoolSize:    cfg.Redis.PoolSize,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err := redisClient.Ping(connectCtx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		logger.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to Redis")
	}

	// Repositories
	userRepo := mongorepo.NewUserRepo(db)
	printerRepo := mongorepo.NewPrinterRepo(db)
	inkFillRepo := mongorepo.NewInkFillRepo(db)
	jobRepo := mongorepo.NewJobRepo(db)
	inventoryRepo := mongorepo.NewInventoryRepo(db)
	settingsRepo := mongorepo.NewSettingsRepo(db)

	// Services
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost, logger)
	printerService := service.NewPrinterService(printerRepo, logger)
	inkFillService := service.NewInkFillService(inkFillRepo, printerRepo, logger)
	jobService := service.NewJobService(jobRepo, printerRepo, logger)
	inventoryService := service.NewInventoryService(inventoryRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)

	// Rate limiter for login attempts
	limiter := buildLimiter(cfg, redisClient)

	// Metrics
	var m *metrics.Metrics
	var metricsWrapper func(http.Handler) http.Handler
	if cfg.Metrics.Enabled {
		m = metrics.New()
		metricsWrapper = m.Middleware
	}

	// Router
	router := handler.NewRouter(handler.RouterConfig{
		AuthHandler:      handler.NewAuthHandler(authService, limiter, logger),
		PrinterHandler:   handler.NewPrinterHandler(printerService, inkFillService, logger),
		InkFillHandler:   handler.NewInkFillHandler(inkFillService, logger),
		JobHandler:       handler.NewJobHandler(jobService, logger),
		InventoryHandler: handler.NewInventoryHandler(inventoryService, logger),
		SettingsHandler:  handler.NewSettingsHandler(settingsService, logger),
		AuthMiddleware:   auth.Middleware(tokens),
		MetricsWrapper:   metricsWrapper,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		Logger:           logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErr <- server.ListenAndServe()
	}()

	// Separate listener for the metrics endpoint
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, m.Handler())
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			logger.Info().Str("addr", metricsServer.Addr).Msg("metrics server listening")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("metrics server shutdown failed")
		}
	}

	logger.Info().Msg("server stopped")
}

// buildLimiter selects the login rate limiter from configuration.
func buildLimiter(cfg *config.Config, redisClient *redis.Client) ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return ratelimit.NewNoOpLimiter()
	}
	if cfg.RateLimit.Backend == "redis" && redisClient != nil {
		return ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
}

// setupLogger configures zerolog from the logging section.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	if cfg.Output == "stderr" {
		out = os.Stderr
	}

	zerolog.TimeFieldFormat = cfg.TimeFormat
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if cfg.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger
}
