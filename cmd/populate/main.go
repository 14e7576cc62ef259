package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rushmore-populate/internal/common/logger"
	"rushmore-populate/internal/config"
	"rushmore-populate/internal/connections/database"
	"rushmore-populate/internal/seeder"
)

func main() {
	orders := flag.Int("orders", 0, "target order count (overrides NUM_ORDERS)")
	batchSize := flag.Int("batch-size", 0, "orders per commit batch (overrides BATCH_SIZE)")
	seed := flag.Int64("seed", 0, "random seed (overrides SEED)")
	truncate := flag.Bool("truncate", true, "truncate tables first (overrides TRUNCATE_FIRST)")
	flag.Parse()

	lg := logger.New("populate")

	cfg, err := config.Load()
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "orders":
			cfg.Seeder.Orders = *orders
		case "batch-size":
			cfg.Seeder.BatchSize = *batchSize
		case "seed":
			cfg.Seeder.Seed = *seed
		case "truncate":
			cfg.Seeder.TruncateFirst = *truncate
		}
	})
	if cfg.Seeder.BatchSize < 1 {
		lg.Error("config_invalid", fmt.Errorf("batch size must be >= 1, got %d", cfg.Seeder.BatchSize), nil)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("population_complete", nil)
}

func run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	lg.Info("db_connected", map[string]any{
		"host": cfg.Database.Host, "port": cfg.Database.Port, "database": cfg.Database.Database,
	})

	return seeder.Run(ctx, pool, cfg, lg)
}
