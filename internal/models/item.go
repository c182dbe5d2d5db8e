package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Item is a single line of an order. It carries only the owning order's id,
// never a back-pointer to the Order struct, so marshalling an order with its
// items can never cycle.
type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
}

// Subtotal is derived on every call, never stored.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return json.Marshal(struct {
		alias
		Subtotal decimal.Decimal `json:"subtotal"`
	}{alias(i), i.Subtotal()})
}
