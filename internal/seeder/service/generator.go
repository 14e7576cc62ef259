package service

import (
	"math"
	"time"

	"rushmore-populate/internal/domain"
)

const (
	minPrice    = 2.50
	maxPrice    = 20.00
	maxQuantity = 3
	itemsStddev = 1.0
)

// Generate produces n order skeletons and their candidate line items.
// Orders carry a zero placeholder total and a random timestamp within
// the current calendar year; line items carry no order id until the
// batch commit resolves them. Menu items are picked with replacement,
// so one order can contain the same item as two separate records.
func (s *SeederService) Generate(n int, refs domain.RefSet) ([]domain.Order, []domain.OrderItem) {
	yearStart := time.Date(time.Now().UTC().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	orders := make([]domain.Order, 0, n)
	items := make([]domain.OrderItem, 0, n*int(math.Ceil(s.cfg.AvgItemsPerOrder)))
	for i := 0; i < n; i++ {
		orders = append(orders, domain.Order{
			CustomerID: refs.Customers[s.rng.Intn(len(refs.Customers))],
			StoreID:    refs.Stores[s.rng.Intn(len(refs.Stores))],
			Timestamp:  s.faker.DateRange(yearStart, yearEnd),
		})

		count := int(math.Round(s.rng.NormFloat64()*itemsStddev + s.cfg.AvgItemsPerOrder))
		if count < 1 {
			count = 1
		}
		for j := 0; j < count; j++ {
			items = append(items, domain.OrderItem{
				ItemID:   refs.MenuItems[s.rng.Intn(len(refs.MenuItems))],
				Quantity: 1 + s.rng.Intn(maxQuantity),
				Price:    round2(minPrice + s.rng.Float64()*(maxPrice-minPrice)),
			})
		}
	}
	return orders, items
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
