package domain

import "time"

// Reference rows. Their ids form the foreign-key pools the order
// engine samples from; they are seeded once and never touched again.

type Store struct {
	ID      int64
	Address string
	City    string
	Phone   string
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type Ingredient struct {
	ID    int64
	Name  string
	Stock float64
	Unit  string // kg | g | liters | units
}

type MenuItem struct {
	ID       int64
	Name     string
	Category string // Pizza | Drink | Side
	Size     string
}

type ItemIngredient struct {
	ItemID           int64
	IngredientID     int64
	QuantityRequired float64
}

// Order is generated with a zero placeholder total; the committer
// overwrites it once the order's line items are known.
type Order struct {
	ID          int64
	CustomerID  int64
	StoreID     int64
	Timestamp   time.Time
	TotalAmount float64
}

// OrderItem is generated with OrderID unset. It stays unresolved until
// the batch commit hands out the generated order ids. Price is drawn
// per occurrence, not looked up from the menu item, so the same item
// can appear twice in one order at different prices.
type OrderItem struct {
	OrderID  int64
	ItemID   int64
	Quantity int
	Price    float64
}

// RefSet holds the foreign-key id pools loaded before generation.
type RefSet struct {
	Stores    []int64
	Customers []int64
	MenuItems []int64
}
