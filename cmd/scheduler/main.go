package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/segyhp/loan-earnings/internal/cache"
	"github.com/segyhp/loan-earnings/internal/config"
	"github.com/segyhp/loan-earnings/internal/importer"
	"github.com/segyhp/loan-earnings/internal/logger"
	"github.com/segyhp/loan-earnings/internal/repository"
	"github.com/segyhp/loan-earnings/internal/storage"
)

const importTimeout = 5 * time.Minute

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.New(cfg.Logging, "scheduler")
	logger.Info("starting earnings import scheduler", "cron", cfg.Scheduler.Cron, "dir", cfg.Scheduler.ImportDir)

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := storage.RunMigrations(db); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	imp := importer.NewImporter(
		repository.NewEarningsRepository(db),
		cache.NewRedisTableCache(redisClient, cfg.Redis.CacheTTL),
		logger,
	)

	// Import once at startup so a fresh database has data before the first tick
	runImport(imp, cfg.Scheduler.ImportDir, logger)

	c := cron.New(
		cron.WithParser(config.CronParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := c.AddFunc(cfg.Scheduler.Cron, func() {
		runImport(imp, cfg.Scheduler.ImportDir, logger)
	}); err != nil {
		logger.Error("failed to schedule import job", "error", err)
		os.Exit(1)
	}

	c.Start()
	logger.Info("scheduler started")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down scheduler")
	<-c.Stop().Done()
	logger.Info("scheduler stopped")
}

func runImport(imp *importer.Importer, dir string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	report, err := imp.ImportDir(ctx, dir)
	if err != nil {
		if report != nil {
			logger.Error("earnings import failed", "dir", dir, "import_id", report.ImportID, "saved", report.Datasets, "error", err)
		} else {
			logger.Error("earnings import failed", "dir", dir, "error", err)
		}
		return
	}
	logger.Info("earnings import finished", "import_id", report.ImportID, "datasets", report.Datasets, "records", report.Records)
}
