package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/segyhp/loan-earnings/internal/cache"
	"github.com/segyhp/loan-earnings/internal/config"
	"github.com/segyhp/loan-earnings/internal/handler"
	"github.com/segyhp/loan-earnings/internal/logger"
	"github.com/segyhp/loan-earnings/internal/repository"
	"github.com/segyhp/loan-earnings/internal/service"
	"github.com/segyhp/loan-earnings/internal/storage"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.New(cfg.Logging, "server")

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		fatal(logger, "failed to initialize database", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := storage.RunMigrations(db); err != nil {
			fatal(logger, "failed to run migrations", err)
		}
	}

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	earningsRepo := repository.NewEarningsRepository(db)
	tableCache := cache.NewRedisTableCache(redisClient, cfg.Redis.CacheTTL)

	// Initialize service
	calculatorService := service.NewCalculatorService(earningsRepo, tableCache, cfg, logger)
	calculatorHandler := handler.NewCalculatorHandler(calculatorService, logger)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.Health.Timeout)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      handler.NewRouter(calculatorHandler, healthHandler, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "addr", server.Addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(logger, "server failed to start", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fatal(logger, "server forced to shutdown", err)
	}

	logger.Info("server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
