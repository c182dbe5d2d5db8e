package store_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bingxyi/PedidosAPI-Project/internal/db"
	"github.com/bingxyi/PedidosAPI-Project/internal/models"
	"github.com/bingxyi/PedidosAPI-Project/internal/store"
)

func setupStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	// One in-memory database per test function, shared across the pool's
	// connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to connect test database")

	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	return store.New(gdb), gdb
}

func price(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func penAndBook() []models.Item {
	return []models.Item{
		{ProductName: "Pen", Quantity: 3, UnitPrice: price(2.00)},
		{ProductName: "Book", Quantity: 1, UnitPrice: price(15.50)},
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))

	assert.Greater(t, order.ID, uint(0))
	assert.Equal(t, "21.50", order.Total.StringFixed(2))
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.Greater(t, item.ID, uint(0))
	}

	fetched, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "21.50", fetched.Total.StringFixed(2))
}

func TestCreateOrderIgnoresCallerTotal(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{
		CustomerName: "Bruno",
		Total:        price(999.99),
		Items:        []models.Item{{ProductName: "Pen", Quantity: 2, UnitPrice: price(2.00)}},
	}
	require.NoError(t, s.CreateOrder(&order))

	assert.Equal(t, "4.00", order.Total.StringFixed(2))
}

func TestCreateOrderWithoutItems(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{CustomerName: "Carla"}
	require.NoError(t, s.CreateOrder(&order))

	assert.True(t, order.Total.IsZero())
	assert.Empty(t, order.Items)
}

func TestGetOrderNotFound(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.GetOrder(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReplaceOrderIsWholesale(t *testing.T) {
	s, gdb := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))
	oldItemIDs := []uint{order.Items[0].ID, order.Items[1].ID}

	replacement := models.Order{
		ID:           order.ID,
		CustomerName: "Ana Maria",
		Items: []models.Item{
			{ProductName: "Notebook", Quantity: 2, UnitPrice: price(30.00)},
		},
	}

	updated, err := s.ReplaceOrder(order.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", updated.CustomerName)
	assert.Equal(t, "60.00", updated.Total.StringFixed(2))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Notebook", updated.Items[0].ProductName)

	// Old items must be gone, not merged.
	var count int64
	gdb.Model(&models.Item{}).Where("id IN ?", oldItemIDs).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReplaceOrderRecomputesRegardlessOfPriorTotal(t *testing.T) {
	s, gdb := setupStore(t)

	order := models.Order{CustomerName: "Davi", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))

	// Corrupt the stored total to simulate drift.
	require.NoError(t, gdb.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("total", price(1.23)).Error)

	replacement := models.Order{ID: order.ID, CustomerName: "Davi", Items: penAndBook()}
	updated, err := s.ReplaceOrder(order.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "21.50", updated.Total.StringFixed(2))
}

func TestReplaceOrderIDMismatch(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))

	_, err := s.ReplaceOrder(order.ID, models.Order{ID: order.ID + 1, CustomerName: "Eve"})
	assert.ErrorIs(t, err, store.ErrIDMismatch)

	// Nothing may have been written.
	fetched, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", fetched.CustomerName)
	assert.Len(t, fetched.Items, 2)
}

func TestReplaceOrderNotFound(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.ReplaceOrder(42, models.Order{ID: 42, CustomerName: "Nobody"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	s, gdb := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))

	require.NoError(t, s.DeleteOrder(order.ID))

	_, err := s.GetOrder(order.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var count int64
	gdb.Model(&models.Item{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteOrderNotFound(t *testing.T) {
	s, _ := setupStore(t)
	assert.ErrorIs(t, s.DeleteOrder(1), store.ErrNotFound)
}

func TestUpdateItemLeavesOrderTotalStale(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))
	item := order.Items[0]

	item.Quantity = 100
	require.NoError(t, s.UpdateItem(item.ID, item))

	updatedItem, err := s.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, updatedItem.Quantity)

	// The stored total must NOT follow the item change.
	fetched, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "21.50", fetched.Total.StringFixed(2))
}

func TestUpdateItemIDMismatch(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))
	item := order.Items[0]

	wrong := item
	wrong.ID = item.ID + 10
	assert.ErrorIs(t, s.UpdateItem(item.ID, wrong), store.ErrIDMismatch)
}

func TestUpdateItemNotFound(t *testing.T) {
	s, _ := setupStore(t)
	assert.ErrorIs(t, s.UpdateItem(7, models.Item{ID: 7, ProductName: "Ghost", Quantity: 1, UnitPrice: price(1)}), store.ErrNotFound)
}

func TestDeleteItemLeavesOrderTotalStale(t *testing.T) {
	s, _ := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))

	require.NoError(t, s.DeleteItem(order.Items[1].ID))

	fetched, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 1)
	assert.Equal(t, "21.50", fetched.Total.StringFixed(2))
}

func TestDeleteItemNotFound(t *testing.T) {
	s, _ := setupStore(t)
	assert.ErrorIs(t, s.DeleteItem(123), store.ErrNotFound)
}

func TestRepairZeroTotals(t *testing.T) {
	s, gdb := setupStore(t)

	// A: total zeroed but items sum to 50 -> must be corrected.
	a := models.Order{CustomerName: "Order A", Items: []models.Item{
		{ProductName: "Widget", Quantity: 5, UnitPrice: price(10.00)},
	}}
	require.NoError(t, s.CreateOrder(&a))
	require.NoError(t, gdb.Model(&models.Order{}).Where("id = ?", a.ID).
		Update("total", decimal.Zero).Error)

	// B: total wrong but nonzero -> not selected.
	b := models.Order{CustomerName: "Order B", Items: []models.Item{
		{ProductName: "Widget", Quantity: 5, UnitPrice: price(10.00)},
	}}
	require.NoError(t, s.CreateOrder(&b))
	require.NoError(t, gdb.Model(&models.Order{}).Where("id = ?", b.ID).
		Update("total", price(30.00)).Error)

	// C: no items, total legitimately zero -> not selected.
	cOrder := models.Order{CustomerName: "Order C"}
	require.NoError(t, s.CreateOrder(&cOrder))

	corrections, err := s.RepairZeroTotals()
	require.NoError(t, err)

	require.Len(t, corrections, 1)
	assert.Equal(t, a.ID, corrections[0].OrderID)
	assert.Equal(t, "50.00", corrections[0].NewTotal.StringFixed(2))

	fetchedA, _ := s.GetOrder(a.ID)
	assert.Equal(t, "50.00", fetchedA.Total.StringFixed(2))

	fetchedB, _ := s.GetOrder(b.ID)
	assert.Equal(t, "30.00", fetchedB.Total.StringFixed(2))

	fetchedC, _ := s.GetOrder(cOrder.ID)
	assert.True(t, fetchedC.Total.IsZero())
}

func TestRepairZeroTotalsIdempotent(t *testing.T) {
	s, gdb := setupStore(t)

	order := models.Order{CustomerName: "Ana", Items: penAndBook()}
	require.NoError(t, s.CreateOrder(&order))
	require.NoError(t, gdb.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("total", decimal.Zero).Error)

	first, err := s.RepairZeroTotals()
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := s.RepairZeroTotals()
	require.NoError(t, err)
	assert.Empty(t, second)
}
