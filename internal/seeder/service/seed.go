package service

import (
	"context"
	"fmt"
	"strings"

	"rushmore-populate/internal/domain"
)

var ingredientUnits = []string{"kg", "g", "liters", "units"}

var (
	menuCategories = []string{"Pizza", "Drink", "Side"}
	menuSizes      = []string{"Small", "Medium", "Large", "500ml", "330ml", "N/A"}
	drinkSizes     = []string{"500ml", "330ml"}
)

func (s *SeederService) SeedStores(ctx context.Context) error {
	stores := make([]domain.Store, s.cfg.Stores)
	for i := range stores {
		stores[i] = domain.Store{
			Address: s.faker.Street(),
			City:    s.faker.City(),
			Phone:   clamp(s.faker.PhoneFormatted(), 20),
		}
	}
	if err := s.repo.InsertStores(ctx, stores); err != nil {
		return err
	}
	s.lg.Info("stores_inserted", map[string]any{"count": len(stores)})
	return nil
}

func (s *SeederService) SeedIngredients(ctx context.Context) error {
	seen := make(map[string]struct{}, s.cfg.Ingredients)
	ingredients := make([]domain.Ingredient, s.cfg.Ingredients)
	for i := range ingredients {
		name := s.uniqueWord(seen, i)
		if i%7 == 0 {
			name += " Cheese"
		}
		ingredients[i] = domain.Ingredient{
			Name:  name,
			Stock: round2(10 + s.rng.Float64()*190),
			Unit:  ingredientUnits[s.rng.Intn(len(ingredientUnits))],
		}
	}
	if err := s.repo.InsertIngredients(ctx, ingredients); err != nil {
		return err
	}
	s.lg.Info("ingredients_inserted", map[string]any{"count": len(ingredients)})
	return nil
}

func (s *SeederService) SeedMenuItems(ctx context.Context) error {
	seen := make(map[string]struct{}, s.cfg.MenuItems)
	items := make([]domain.MenuItem, s.cfg.MenuItems)
	for i := range items {
		name := s.uniqueWord(seen, i)
		if i%2 == 0 {
			name += " Pizza"
		}
		category := menuCategories[s.rng.Intn(len(menuCategories))]
		size := menuSizes[s.rng.Intn(len(menuSizes))]
		if category == "Drink" {
			size = drinkSizes[s.rng.Intn(len(drinkSizes))]
		}
		items[i] = domain.MenuItem{Name: name, Category: category, Size: size}
	}
	if err := s.repo.InsertMenuItems(ctx, items); err != nil {
		return err
	}
	s.lg.Info("menu_items_inserted", map[string]any{"count": len(items)})
	return nil
}

// MapItemIngredients gives every menu item a recipe of 3 to 8 distinct
// ingredients (fewer if the ingredient table is small).
func (s *SeederService) MapItemIngredients(ctx context.Context) error {
	itemIDs, err := s.repo.MenuItemIDs(ctx)
	if err != nil {
		return err
	}
	ingredientIDs, err := s.repo.IngredientIDs(ctx)
	if err != nil {
		return err
	}
	if len(ingredientIDs) == 0 {
		return fmt.Errorf("%w: ingredients=0", domain.ErrEmptyReferenceSet)
	}

	var mappings []domain.ItemIngredient
	for _, itemID := range itemIDs {
		hi := 8
		if len(ingredientIDs) < hi {
			hi = len(ingredientIDs)
		}
		num := hi
		if hi > 3 {
			num = 3 + s.rng.Intn(hi-2)
		}
		for _, k := range s.rng.Perm(len(ingredientIDs))[:num] {
			mappings = append(mappings, domain.ItemIngredient{
				ItemID:           itemID,
				IngredientID:     ingredientIDs[k],
				QuantityRequired: round2(0.05 + s.rng.Float64()*1.45),
			})
		}
	}
	if err := s.repo.InsertItemIngredients(ctx, mappings); err != nil {
		return err
	}
	s.lg.Info("item_ingredients_inserted", map[string]any{"count": len(mappings)})
	return nil
}

func (s *SeederService) SeedCustomers(ctx context.Context) error {
	customers := make([]domain.Customer, s.cfg.Customers)
	for i := range customers {
		first := s.faker.FirstName()
		last := s.faker.LastName()
		customers[i] = domain.Customer{
			FirstName: first,
			LastName:  last,
			Email: fmt.Sprintf("%s.%s%d@%s",
				strings.ToLower(first), strings.ToLower(last), 1+s.rng.Intn(9999), s.faker.DomainName()),
			Phone: clamp(s.faker.PhoneFormatted(), 20),
		}
	}
	if err := s.repo.InsertCustomers(ctx, customers); err != nil {
		return err
	}
	s.lg.Info("customers_inserted", map[string]any{"count": len(customers)})
	return nil
}

// uniqueWord draws title-cased words until an unused one turns up;
// after a few collisions it falls back to suffixing the row index.
func (s *SeederService) uniqueWord(seen map[string]struct{}, i int) string {
	for attempt := 0; attempt < 10; attempt++ {
		w := titleCase(s.faker.Word())
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			return w
		}
	}
	w := fmt.Sprintf("%s %d", titleCase(s.faker.Word()), i)
	seen[w] = struct{}{}
	return w
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func clamp(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
