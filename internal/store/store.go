// Package store is the single write path to the order database. Both
// surfaces (HTTP handlers and the console tool) go through it, so the
// total-recomputation rules live here and nowhere else.
package store

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bingxyi/PedidosAPI-Project/internal/metrics"
	"github.com/bingxyi/PedidosAPI-Project/internal/models"
	"github.com/bingxyi/PedidosAPI-Project/internal/totals"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrIDMismatch = errors.New("payload id does not match path id")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListOrders() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := s.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder persists the order and its items in one transaction. The stored
// total is computed from the item set before the write, never taken from the
// caller.
func (s *Store) CreateOrder(order *models.Order) error {
	order.ID = 0
	order.Total = totals.Sum(order.Items)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Preload("Items").First(order, order.ID).Error
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreated.Inc()
	return nil
}

// ReplaceOrder overwrites the customer name and the whole item collection.
// Old items are dropped, not merged, and the total is recomputed from the new
// set, whatever the order carried before.
func (s *Store) ReplaceOrder(id uint, in models.Order) (*models.Order, error) {
	if in.ID != id {
		return nil, ErrIDMismatch
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}

		items := in.Items
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = id
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"customer_name": in.CustomerName,
			"total":         totals.Sum(items),
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Preload("Items").First(&order, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes the order and every item it owns. The cascade is done
// explicitly inside the transaction so it holds on SQLite regardless of the
// foreign_keys pragma.
func (s *Store) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

func (s *Store) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	err := s.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListItems() ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem overwrites the item's mutable fields in place. It deliberately
// does NOT touch the owning order's stored total: after an isolated item
// update the total is stale until a full order replacement or the repair scan
// rewrites it. Callers that need the real figure recompute it from the items.
func (s *Store) UpdateItem(id uint, in models.Item) error {
	if in.ID != id {
		return ErrIDMismatch
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"product_name": in.ProductName,
			"quantity":     in.Quantity,
			"unit_price":   in.UnitPrice,
			"order_id":     in.OrderID,
		}
		return tx.Model(&item).Updates(updates).Error
	})
}

// DeleteItem removes a single item. Like UpdateItem it leaves the owning
// order's stored total as-is.
func (s *Store) DeleteItem(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&item).Error
	})
}

// Correction records one order fixed by the repair scan.
type Correction struct {
	OrderID      uint
	CustomerName string
	NewTotal     decimal.Decimal
}

// RepairZeroTotals finds every order whose stored total is exactly zero but
// which has at least one item, rewrites the total as the sum of the item
// subtotals, and persists all corrections in one transaction.
//
// Zero is the only drift signal: orders carrying a wrong nonzero total are
// not selected, and empty orders legitimately stay at zero.
func (s *Store) RepairZeroTotals() ([]Correction, error) {
	var corrections []Correction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Preload("Items").Where("total = 0").Find(&orders).Error; err != nil {
			return err
		}

		for _, order := range orders {
			if len(order.Items) == 0 {
				continue
			}
			corrected := totals.Sum(order.Items)
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("total", corrected).Error; err != nil {
				return err
			}
			corrections = append(corrections, Correction{
				OrderID:      order.ID,
				CustomerName: order.CustomerName,
				NewTotal:     corrected,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TotalsRepaired.Add(float64(len(corrections)))
	return corrections, nil
}
