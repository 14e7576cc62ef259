package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rushmore-populate/internal/domain"
)

// tape replays a fixed sequence of advance draws. Values below 0.4
// advance to the next order, values at or above it stay.
type tape struct {
	draws []float64
	pos   int
}

func (t *tape) Float64() float64 {
	v := t.draws[t.pos%len(t.draws)]
	t.pos++
	return v
}

const (
	stay    = 0.9
	advance = 0.1
)

func pendingItems(n int) []domain.OrderItem {
	items := make([]domain.OrderItem, n)
	for i := range items {
		items[i] = domain.OrderItem{ItemID: int64(i + 1), Quantity: 1, Price: 5.00}
	}
	return items
}

func TestAssignLineItems_FixedTape(t *testing.T) {
	ids := []int64{10, 20, 30, 40, 50}
	items := pendingItems(12)

	// Hand-computed walk: each item takes the current id, then the
	// draw decides whether the cursor moves on.
	draws := &tape{draws: []float64{
		stay, advance, // items 1,2 -> 10, cursor to 20
		advance,             // item 3 -> 20, cursor to 30
		stay, stay, advance, // items 4,5,6 -> 30, cursor to 40
		advance,       // item 7 -> 40, cursor to 50
		stay, advance, // items 8,9 -> 50, cursor past the end
	}}

	assigned := AssignLineItems(ids, items, draws)

	want := []int64{10, 10, 20, 30, 30, 30, 40, 50, 50}
	require.Len(t, assigned, len(want))
	for i, it := range assigned {
		assert.Equal(t, want[i], it.OrderID, "item %d", i)
		assert.Equal(t, items[i].ItemID, it.ItemID, "item %d keeps its menu item", i)
	}
}

func TestAssignLineItems_DropsOverflowWhenOrdersExhausted(t *testing.T) {
	ids := []int64{1, 2}
	items := pendingItems(5)

	// Always advance: two items land, three are dropped.
	assigned := AssignLineItems(ids, items, &tape{draws: []float64{advance}})

	require.Len(t, assigned, 2)
	assert.Equal(t, int64(1), assigned[0].OrderID)
	assert.Equal(t, int64(2), assigned[1].OrderID)
}

func TestAssignLineItems_NeverAdvancesPutsAllOnFirstOrder(t *testing.T) {
	ids := []int64{7, 8, 9}
	assigned := AssignLineItems(ids, pendingItems(6), &tape{draws: []float64{stay}})

	require.Len(t, assigned, 6)
	for _, it := range assigned {
		assert.Equal(t, int64(7), it.OrderID)
	}
}

func TestAssignLineItems_NoOrders(t *testing.T) {
	assigned := AssignLineItems(nil, pendingItems(3), &tape{draws: []float64{stay}})
	assert.Empty(t, assigned)
}

func TestCommitOrderBatch_PositionalIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	// Distinguishable timestamps: id k must belong to the k-th
	// submitted order.
	ts := func(h int) time.Time { return time.Date(2026, 3, 1, h, 0, 0, 0, time.UTC) }
	orders := []domain.Order{
		{CustomerID: 1, StoreID: 1, Timestamp: ts(1)},
		{CustomerID: 2, StoreID: 1, Timestamp: ts(2)},
		{CustomerID: 3, StoreID: 2, Timestamp: ts(3)},
	}
	items := pendingItems(4)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(
			int64(1), int64(1), ts(1), 0.0,
			int64(2), int64(1), ts(2), 0.0,
			int64(3), int64(2), ts(3), 0.0,
		).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).
			AddRow(int64(101)).AddRow(int64(102)).AddRow(int64(103)))
	mock.ExpectCopyFrom(pgx.Identifier{"order_items"},
		[]string{"order_id", "item_id", "quantity", "price_at_time_of_order"}).
		WillReturnResult(4)
	mock.ExpectExec(`UPDATE orders`).
		WithArgs([]int64{101, 102, 103}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectCommit()

	ids, inserted, err := repo.CommitOrderBatch(context.Background(), orders, items,
		&tape{draws: []float64{advance, stay, advance, stay}})
	require.NoError(t, err)

	assert.Equal(t, []int64{101, 102, 103}, ids)
	assert.Equal(t, 4, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitOrderBatch_NoItemsStillRecomputesTotals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	orders := []domain.Order{{CustomerID: 1, StoreID: 1, Timestamp: time.Now()}}

	// No CopyFrom expected: the totals update alone must run so the
	// itemless order ends at 0 rather than the placeholder.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int64(55)))
	mock.ExpectExec(`UPDATE orders`).
		WithArgs([]int64{55}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ids, inserted, err := repo.CommitOrderBatch(context.Background(), orders, nil,
		&tape{draws: []float64{stay}})
	require.NoError(t, err)

	assert.Equal(t, []int64{55}, ids)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitOrderBatch_InvalidBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	_, _, err = repo.CommitOrderBatch(context.Background(), nil, pendingItems(2),
		&tape{draws: []float64{stay}})
	assert.ErrorIs(t, err, domain.ErrInvalidBatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitOrderBatch_EmptyBatchIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	ids, inserted, err := repo.CommitOrderBatch(context.Background(), nil, nil, &tape{draws: []float64{stay}})
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitOrderBatch_RollsBackOnInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	orders := []domain.Order{{CustomerID: 1, StoreID: 1, Timestamp: time.Now()}}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, _, err = repo.CommitOrderBatch(context.Background(), orders, pendingItems(2),
		&tape{draws: []float64{stay}})
	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitOrderBatch_IDCountMismatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	orders := []domain.Order{
		{CustomerID: 1, StoreID: 1, Timestamp: time.Now()},
		{CustomerID: 2, StoreID: 1, Timestamp: time.Now()},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int64(1)))
	mock.ExpectRollback()

	_, _, err = repo.CommitOrderBatch(context.Background(), orders, nil, &tape{draws: []float64{stay}})
	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
