package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rushmore-populate/internal/domain"
)

// PgxPool is the slice of *pgxpool.Pool the repository needs. pgxmock's
// pool satisfies it too, which is how the SQL paths are tested.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type SeederRepositoryInterface interface {
	TruncateAll(ctx context.Context) error
	InsertStores(ctx context.Context, stores []domain.Store) error
	InsertCustomers(ctx context.Context, customers []domain.Customer) error
	InsertIngredients(ctx context.Context, ingredients []domain.Ingredient) error
	InsertMenuItems(ctx context.Context, items []domain.MenuItem) error
	InsertItemIngredients(ctx context.Context, mappings []domain.ItemIngredient) error
	IngredientIDs(ctx context.Context) ([]int64, error)
	MenuItemIDs(ctx context.Context) ([]int64, error)
	LoadRefs(ctx context.Context) (domain.RefSet, error)
	CommitOrderBatch(ctx context.Context, orders []domain.Order, items []domain.OrderItem, rng AdvanceSource) ([]int64, int, error)
}

type Repository struct {
	db PgxPool
}

var _ SeederRepositoryInterface = (*Repository)(nil)

func New(db PgxPool) *Repository { return &Repository{db: db} }
