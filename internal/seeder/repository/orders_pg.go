package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"rushmore-populate/internal/domain"
)

// AdvanceSource supplies the draws that decide when the run-length
// assignment moves to the next order. *rand.Rand satisfies it; tests
// use a fixed tape.
type AdvanceSource interface {
	Float64() float64
}

// advanceProb is the chance of moving on after each assigned line item,
// so each order absorbs a Geometric(0.4) run of items, mean 2.5.
const advanceProb = 0.4

// CommitOrderBatch persists a batch as one atomic unit: insert the
// orders and collect their generated ids in submission order, resolve
// the pending line items against those ids, bulk insert the resolved
// items, then recompute each committed order's total from the items it
// actually received. On any storage failure the whole batch rolls back
// and the error wraps domain.ErrCommitFailed.
func (r *Repository) CommitOrderBatch(ctx context.Context, orders []domain.Order, items []domain.OrderItem, rng AdvanceSource) ([]int64, int, error) {
	if len(orders) == 0 {
		if len(items) > 0 {
			return nil, 0, fmt.Errorf("%w: %d line items without orders", domain.ErrInvalidBatch, len(items))
		}
		return nil, 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: begin: %w", domain.ErrCommitFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// 1. Insert orders; returned ids are consumed positionally, so the
	// id count must match the order count exactly.
	ids, err := insertOrders(ctx, tx, orders)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: insert orders: %w", domain.ErrCommitFailed, err)
	}
	if len(ids) != len(orders) {
		return nil, 0, fmt.Errorf("%w: got %d generated ids for %d orders", domain.ErrCommitFailed, len(ids), len(orders))
	}

	// 2. Resolve pending line items against the generated ids.
	assigned := AssignLineItems(ids, items, rng)

	// 3. Bulk insert the resolved line items.
	if len(assigned) > 0 {
		copied, err := tx.CopyFrom(ctx,
			pgx.Identifier{"order_items"},
			[]string{"order_id", "item_id", "quantity", "price_at_time_of_order"},
			pgx.CopyFromSlice(len(assigned), func(i int) ([]any, error) {
				it := assigned[i]
				return []any{it.OrderID, it.ItemID, it.Quantity, it.Price}, nil
			}),
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: insert order items: %w", domain.ErrCommitFailed, err)
		}
		if copied != int64(len(assigned)) {
			return nil, 0, fmt.Errorf("%w: copied %d of %d order items", domain.ErrCommitFailed, copied, len(assigned))
		}
	}

	// 4. Recompute totals for exactly the orders in this batch. Orders
	// that received no line items end at 0, not the placeholder.
	if _, err := tx.Exec(ctx, `
		UPDATE orders
		SET total_amount = COALESCE((
			SELECT SUM(quantity * price_at_time_of_order)
			FROM order_items
			WHERE order_items.order_id = orders.order_id
		), 0)
		WHERE order_id = ANY($1)`, ids); err != nil {
		return nil, 0, fmt.Errorf("%w: update totals: %w", domain.ErrCommitFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("%w: commit: %w", domain.ErrCommitFailed, err)
	}
	return ids, len(assigned), nil
}

func insertOrders(ctx context.Context, tx pgx.Tx, orders []domain.Order) ([]int64, error) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO orders (customer_id, store_id, order_timestamp, total_amount) VALUES ")
	args := make([]any, 0, len(orders)*4)
	for i, o := range orders {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, o.CustomerID, o.StoreID, o.Timestamp, o.TotalAmount)
	}
	sb.WriteString(" RETURNING order_id")

	rows, err := tx.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0, len(orders))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AssignLineItems walks items in generation order, assigning each to
// the current order id and advancing with probability advanceProb, so
// every committed order is visited in sequence. If the id stream runs
// out first, the remaining items are dropped, not reassigned; that loss
// is intended and part of the reproducible output for a fixed seed.
func AssignLineItems(ids []int64, items []domain.OrderItem, rng AdvanceSource) []domain.OrderItem {
	assigned := make([]domain.OrderItem, 0, len(items))
	next := 0
	for _, it := range items {
		if next >= len(ids) {
			break
		}
		it.OrderID = ids[next]
		assigned = append(assigned, it)
		if rng.Float64() < advanceProb {
			next++
		}
	}
	return assigned
}
