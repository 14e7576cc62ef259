package seeder

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rushmore-populate/internal/common/logger"
	"rushmore-populate/internal/config"
	"rushmore-populate/internal/seeder/repository"
	"rushmore-populate/internal/seeder/service"
)

// Run executes the full population pipeline against an open pool:
// optional truncate, reference tables in dependency order, then the
// order engine. Steps run strictly in sequence; the first failure
// stops the pipeline with earlier steps already committed.
func Run(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, lg *logger.Logger) error {
	repo := repository.New(pool)
	svc := service.New(repo, cfg.Seeder, lg)

	if cfg.Seeder.TruncateFirst {
		if err := repo.TruncateAll(ctx); err != nil {
			return err
		}
		lg.Info("tables_truncated", nil)
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"stores", svc.SeedStores},
		{"ingredients", svc.SeedIngredients},
		{"menu_items", svc.SeedMenuItems},
		{"item_ingredients", svc.MapItemIngredients},
		{"customers", svc.SeedCustomers},
		{"orders", svc.CreateOrders},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			lg.Error("seed_step_failed", err, map[string]any{"step": step.name})
			return err
		}
	}
	return nil
}
