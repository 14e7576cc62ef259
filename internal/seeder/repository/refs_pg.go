package repository

import (
	"context"
	"fmt"

	"rushmore-populate/internal/domain"
)

// LoadRefs fetches the id pools the order engine samples from. Order of
// ids within each pool is irrelevant; emptiness of any pool is fatal.
func (r *Repository) LoadRefs(ctx context.Context) (domain.RefSet, error) {
	stores, err := r.queryIDs(ctx, `SELECT store_id FROM stores`)
	if err != nil {
		return domain.RefSet{}, fmt.Errorf("failed to load store ids: %w", err)
	}
	customers, err := r.queryIDs(ctx, `SELECT customer_id FROM customers`)
	if err != nil {
		return domain.RefSet{}, fmt.Errorf("failed to load customer ids: %w", err)
	}
	items, err := r.queryIDs(ctx, `SELECT item_id FROM menu_items`)
	if err != nil {
		return domain.RefSet{}, fmt.Errorf("failed to load menu item ids: %w", err)
	}

	if len(stores) == 0 || len(customers) == 0 || len(items) == 0 {
		return domain.RefSet{}, fmt.Errorf("%w: stores=%d customers=%d menu_items=%d",
			domain.ErrEmptyReferenceSet, len(stores), len(customers), len(items))
	}
	return domain.RefSet{Stores: stores, Customers: customers, MenuItems: items}, nil
}

func (r *Repository) MenuItemIDs(ctx context.Context) ([]int64, error) {
	ids, err := r.queryIDs(ctx, `SELECT item_id FROM menu_items`)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu item ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) IngredientIDs(ctx context.Context) ([]int64, error) {
	ids, err := r.queryIDs(ctx, `SELECT ingredient_id FROM ingredients`)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) queryIDs(ctx context.Context, sql string) ([]int64, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
