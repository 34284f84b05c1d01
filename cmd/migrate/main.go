package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [up|down|version]\n", os.Args[0])
		flag.PrintDefaults()
	}
	timeout := flag.Duration("timeout", 5*time.Minute, "overall migration timeout")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db)
	if err != nil {
		l.Fatal("Failed to open migration source", zap.Error(err))
	}
	defer migrator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch command {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}
		l.Info("Migrations applied", zap.Int("count", applied))
		if applied > 0 {
			invalidateCategoryCache(ctx, cfg, db)
		}
	case "down":
		if err := migrator.Down(ctx); err != nil {
			l.Fatal("Failed to revert migration", zap.Error(err))
		}
		l.Info("Reverted latest migration")
		invalidateCategoryCache(ctx, cfg, db)
	case "version":
		version, err := migrator.Version(ctx)
		if err != nil {
			l.Fatal("Failed to read schema version", zap.Error(err))
		}
		fmt.Println(version)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// invalidateCategoryCache drops the cached category map after the category seed
// may have changed. Failures are logged; the entry still expires with its TTL.
func invalidateCategoryCache(ctx context.Context, cfg *config.Config, db *sqlx.DB) {
	l := logger.Get()
	if cfg.Redis.Address == "" {
		return
	}
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		l.Warn("Redis unavailable, category cache left to expire", zap.Error(err))
		return
	}
	defer redisClient.Close()

	categories := service.NewCategoryService(repository.NewCategoryDatabaseAdapter(db), adapter.NewRedisCacheAdapter(redisClient), cfg.Redis.CategoryTTL)
	if err := categories.InvalidateCategoryMap(ctx); err != nil {
		l.Warn("Failed to invalidate category cache", zap.Error(err))
	}
}
