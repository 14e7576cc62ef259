package service

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// CreateOrders drives the full order target in batch-sized chunks, the
// final chunk possibly smaller. Each chunk is generated and committed
// before the next one starts; both operations draw from the same
// shared random source, so reordering them would break reproducibility.
// A failed commit aborts the run and leaves earlier batches durable.
func (s *SeederService) CreateOrders(ctx context.Context) error {
	if s.cfg.BatchSize < 1 {
		return fmt.Errorf("batch size must be >= 1, got %d", s.cfg.BatchSize)
	}

	refs, err := s.repo.LoadRefs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reference ids: %w", err)
	}

	bar := progressbar.Default(int64(s.cfg.Orders), "generating orders")
	var ordersDone, itemsDone int
	for remaining := s.cfg.Orders; remaining > 0; {
		n := s.cfg.BatchSize
		if n > remaining {
			n = remaining
		}

		orders, items := s.Generate(n, refs)
		_, inserted, err := s.repo.CommitOrderBatch(ctx, orders, items, s.rng)
		if err != nil {
			return fmt.Errorf("failed to commit order batch: %w", err)
		}

		ordersDone += len(orders)
		itemsDone += inserted
		remaining -= n
		_ = bar.Add(n)
	}
	_ = bar.Finish()

	s.lg.Info("orders_inserted", map[string]any{"orders": ordersDone, "order_items": itemsDone})
	return nil
}
