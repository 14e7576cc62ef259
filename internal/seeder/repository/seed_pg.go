package repository

import (
	"context"
	"fmt"
	"strings"

	"rushmore-populate/internal/domain"
)

// TruncateAll empties every populated table and resets the id
// sequences so a fresh run starts from id 1.
func (r *Repository) TruncateAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE TABLE
		order_items, orders, item_ingredients, menu_items, ingredients, customers, stores
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

func (r *Repository) InsertStores(ctx context.Context, stores []domain.Store) error {
	rows := make([][]any, len(stores))
	for i, s := range stores {
		rows[i] = []any{s.Address, s.City, s.Phone}
	}
	if err := r.bulkInsert(ctx, "stores", []string{"address", "city", "phone_number"}, rows); err != nil {
		return fmt.Errorf("failed to insert stores: %w", err)
	}
	return nil
}

func (r *Repository) InsertCustomers(ctx context.Context, customers []domain.Customer) error {
	rows := make([][]any, len(customers))
	for i, c := range customers {
		rows[i] = []any{c.FirstName, c.LastName, c.Email, c.Phone}
	}
	if err := r.bulkInsert(ctx, "customers", []string{"first_name", "last_name", "email", "phone_number"}, rows); err != nil {
		return fmt.Errorf("failed to insert customers: %w", err)
	}
	return nil
}

func (r *Repository) InsertIngredients(ctx context.Context, ingredients []domain.Ingredient) error {
	rows := make([][]any, len(ingredients))
	for i, ing := range ingredients {
		rows[i] = []any{ing.Name, ing.Stock, ing.Unit}
	}
	if err := r.bulkInsert(ctx, "ingredients", []string{"name", "stock_quantity", "unit"}, rows); err != nil {
		return fmt.Errorf("failed to insert ingredients: %w", err)
	}
	return nil
}

func (r *Repository) InsertMenuItems(ctx context.Context, items []domain.MenuItem) error {
	rows := make([][]any, len(items))
	for i, it := range items {
		rows[i] = []any{it.Name, it.Category, it.Size}
	}
	if err := r.bulkInsert(ctx, "menu_items", []string{"name", "category", "size"}, rows); err != nil {
		return fmt.Errorf("failed to insert menu items: %w", err)
	}
	return nil
}

func (r *Repository) InsertItemIngredients(ctx context.Context, mappings []domain.ItemIngredient) error {
	rows := make([][]any, len(mappings))
	for i, m := range mappings {
		rows[i] = []any{m.ItemID, m.IngredientID, m.QuantityRequired}
	}
	if err := r.bulkInsert(ctx, "item_ingredients", []string{"item_id", "ingredient_id", "quantity_required"}, rows); err != nil {
		return fmt.Errorf("failed to insert item ingredients: %w", err)
	}
	return nil
}

// bulkInsert writes all rows through a single multi-row VALUES insert.
func (r *Repository) bulkInsert(ctx context.Context, table string, cols []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", table, strings.Join(cols, ", "))
	args := make([]any, 0, len(rows)*len(cols))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", len(args)+j+1)
		}
		sb.WriteByte(')')
		args = append(args, row...)
	}

	_, err := r.db.Exec(ctx, sb.String(), args...)
	return err
}
