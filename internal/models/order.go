package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is the aggregate root: it owns its items, and its stored Total is a
// denormalized copy of the sum of the item subtotals. The total is written by
// the store on order creation and full replacement; item-level updates leave
// it untouched (see store.RepairZeroTotals).
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CustomerName string          `gorm:"not null" json:"customer_name"`
	CreatedAt    time.Time       `json:"created_at"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Items        []Item          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
