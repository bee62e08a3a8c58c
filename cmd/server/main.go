package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/macadden/monetary-movements-test/internal/adapter/http"
	"github.com/macadden/monetary-movements-test/internal/adapter/http/handler"
	"github.com/macadden/monetary-movements-test/internal/adapter/http/middleware"
	"github.com/macadden/monetary-movements-test/internal/adapter/rates"
	postgresRepo "github.com/macadden/monetary-movements-test/internal/adapter/repository/postgres"
	redisRepo "github.com/macadden/monetary-movements-test/internal/adapter/repository/redis"
	"github.com/macadden/monetary-movements-test/internal/infrastructure/config"
	"github.com/macadden/monetary-movements-test/internal/infrastructure/logger"
	"github.com/macadden/monetary-movements-test/internal/infrastructure/postgres"
	"github.com/macadden/monetary-movements-test/internal/infrastructure/redis"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	// Run migrations if requested
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	clientRepo := postgresRepo.NewClientRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Exchange rate provider: every report fetches fresh
	rateProvider := rates.NewClient(cfg.RateAPIURL, cfg.RateTimeout)

	// Initialize use cases
	clientUC := usecase.NewClientUseCase(clientRepo, categoryRepo, idGen)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, clientRepo, idGen)
	movementUC := usecase.NewMovementUseCase(txManager, accountRepo, movementRepo, idGen, retrier)
	balanceUC := usecase.NewBalanceUseCase(clientRepo, accountRepo, movementRepo, rateProvider, cfg.RateQuote)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientUC)
	categoryHandler := handler.NewCategoryHandler(categoryUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	movementHandler := handler.NewMovementHandler(movementUC)
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	routerCfg := httpAdapter.RouterConfig{
		ClientHandler:    clientHandler,
		CategoryHandler:  categoryHandler,
		AccountHandler:   accountHandler,
		MovementHandler:  movementHandler,
		BalanceHandler:   balanceHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		Logging:          middleware.NewLoggingMiddleware(log.Logger),
	}

	if cfg.RateLimitRPS > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(routerCfg)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
