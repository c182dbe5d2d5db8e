// Package totals holds the one real domain rule of the system: an order's
// total is the sum of quantity × unit price over its items.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/bingxyi/PedidosAPI-Project/internal/models"
)

// Sum returns the total an order should carry for the given item set.
func Sum(items []models.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsStale reports whether an order's stored total diverges from the total
// recomputed from its items. Display-only: the repair scan deliberately uses
// a narrower predicate (total exactly zero with at least one item).
func IsStale(order models.Order) bool {
	return !order.Total.Equal(Sum(order.Items))
}
