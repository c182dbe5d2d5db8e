package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bingxyi/PedidosAPI-Project/internal/models"
)

// readOrderItems runs the interactive item entry loop. The loop stops on "s"
// or a blank product name. A bad quantity or price skips that item and asks
// for the next one. Returns ok=false when nothing was entered, in which case
// the order must not be saved.
func (c *cli) readOrderItems(customer string) (*models.Order, bool) {
	order := &models.Order{CustomerName: customer}

	for {
		product, ok := c.prompt("Product name (or 's' to stop): ")
		if !ok || product == "" || strings.ToLower(product) == "s" {
			break
		}

		qtyRaw, ok := c.prompt("Quantity: ")
		if !ok {
			break
		}
		qty, err := parseQuantity(qtyRaw)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid quantity.")
			continue
		}

		priceRaw, ok := c.prompt("Unit price: ")
		if !ok {
			break
		}
		price, err := parsePrice(priceRaw)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid price.")
			continue
		}

		order.Items = append(order.Items, models.Item{
			ProductName: product,
			Quantity:    qty,
			UnitPrice:   price,
		})
		fmt.Fprintln(c.out, "Item added.")
	}

	if len(order.Items) == 0 {
		fmt.Fprintln(c.out, "Order cancelled (no items).")
		return nil, false
	}
	return order, true
}

func parseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if qty <= 0 {
		return 0, fmt.Errorf("quantity must be positive")
	}
	return qty, nil
}

// parsePrice accepts both "15.50" and "15,50".
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, err
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("price must be positive")
	}
	return price, nil
}
