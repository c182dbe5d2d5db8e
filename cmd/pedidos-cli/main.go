// Command pedidos-cli is an interactive maintenance console that works
// directly on the order database, side by side with the HTTP API. It opens a
// fresh store handle for every menu selection and closes it when the
// operation finishes.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bingxyi/PedidosAPI-Project/internal/db"
	"github.com/bingxyi/PedidosAPI-Project/internal/store"
	"github.com/bingxyi/PedidosAPI-Project/internal/totals"
)

func main() {
	c := &cli{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
	c.run(withStore)
}

// withStore opens a store handle for one menu operation and releases it
// unconditionally when the operation returns.
func withStore(fn func(*store.Store) error) error {
	gdb, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close(gdb)
	return fn(store.New(gdb))
}

type cli struct {
	in  *bufio.Scanner
	out io.Writer
}

type storeRunner func(func(*store.Store) error) error

func (c *cli) run(with storeRunner) {
	fmt.Fprintln(c.out, "Starting CLI ...")

	for {
		fmt.Fprintln(c.out, "\n--- PedidosAPI CLI ---")
		fmt.Fprintln(c.out, "1. [GET] List all orders")
		fmt.Fprintln(c.out, "2. [GET {id}] Find order by ID")
		fmt.Fprintln(c.out, "3. [POST] Add new order")
		fmt.Fprintln(c.out, "4. [DELETE {id}] Delete order")
		fmt.Fprintln(c.out, "5. [PUT] Repair totals in the database")
		fmt.Fprintln(c.out, "0. Exit")

		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return
		}

		var err error
		switch choice {
		case "1":
			err = with(c.listOrders)
		case "2":
			err = with(c.findOrder)
		case "3":
			err = with(c.addOrder)
		case "4":
			err = with(c.deleteOrder)
		case "5":
			err = with(c.repairTotals)
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}

		if err != nil {
			log.WithField("component", "cli").Error(err)
			fmt.Fprintf(c.out, "Operation failed: %v\n", err)
		}
	}
}

// prompt reads one trimmed input line; ok is false once stdin is exhausted.
func (c *cli) prompt(msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptID aborts the current operation (not the program) on non-numeric
// input.
func (c *cli) promptID(msg string) (uint, bool) {
	raw, ok := c.prompt(msg)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid ID.")
		return 0, false
	}
	return uint(id), true
}

// listOrders prints every order with the stored total and the total
// recomputed from the items side by side, so drift is visible at a glance.
func (c *cli) listOrders(s *store.Store) error {
	fmt.Fprintln(c.out, "\n--- Listing orders ---")

	orders, err := s.ListOrders()
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "No orders found.")
		return nil
	}

	for _, order := range orders {
		computed := totals.Sum(order.Items)

		fmt.Fprintf(c.out, "[Order ID: %d] Customer: %s\n", order.ID, order.CustomerName)
		fmt.Fprintf(c.out, "  Total (stored in DB): %s\n", order.Total.StringFixed(2))
		fmt.Fprintf(c.out, "  Total (computed):     %s\n", computed.StringFixed(2))

		for _, item := range order.Items {
			fmt.Fprintf(c.out, "  -> Item: %s, Qty: %d, Unit price: %s\n",
				item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2))
		}
		fmt.Fprintln(c.out, "-------------------------")
	}
	return nil
}

func (c *cli) findOrder(s *store.Store) error {
	id, ok := c.promptID("Enter the order ID: ")
	if !ok {
		return nil
	}

	order, err := s.GetOrder(id)
	if err == store.ErrNotFound {
		fmt.Fprintf(c.out, "Order with ID %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	computed := totals.Sum(order.Items)
	fmt.Fprintf(c.out, "\n--- Order ID: %d ---\n", order.ID)
	fmt.Fprintf(c.out, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(c.out, "Created: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(c.out, "Total (stored): %s / Total (computed): %s\n",
		order.Total.StringFixed(2), computed.StringFixed(2))
	fmt.Fprintln(c.out, "Items:")
	for _, item := range order.Items {
		fmt.Fprintf(c.out, "  -> %s (Qty: %d, Unit price: %s)\n",
			item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2))
	}
	return nil
}

func (c *cli) addOrder(s *store.Store) error {
	fmt.Fprintln(c.out, "\n--- Add new order ---")

	customer, ok := c.prompt("Customer name: ")
	if !ok || customer == "" {
		fmt.Fprintln(c.out, "Customer name cannot be empty.")
		return nil
	}

	order, ok := c.readOrderItems(customer)
	if !ok {
		return nil
	}

	if err := s.CreateOrder(order); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Order for '%s' (Total: %s) saved with ID: %d\n",
		order.CustomerName, order.Total.StringFixed(2), order.ID)
	return nil
}

func (c *cli) deleteOrder(s *store.Store) error {
	id, ok := c.promptID("Enter the ID of the order to DELETE: ")
	if !ok {
		return nil
	}

	order, err := s.GetOrder(id)
	if err == store.ErrNotFound {
		fmt.Fprintf(c.out, "Order with ID %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	confirm, _ := c.prompt(fmt.Sprintf(
		"Are you sure you want to delete the order of '%s' (ID: %d)? (y/n): ",
		order.CustomerName, id))
	if strings.ToLower(confirm) != "y" {
		fmt.Fprintln(c.out, "Operation cancelled.")
		return nil
	}

	if err := s.DeleteOrder(id); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Order deleted successfully.")
	return nil
}

func (c *cli) repairTotals(s *store.Store) error {
	fmt.Fprintln(c.out, "\n--- Repairing totals in the database ---")

	corrections, err := s.RepairZeroTotals()
	if err != nil {
		return err
	}
	if len(corrections) == 0 {
		fmt.Fprintln(c.out, "No orders with a zeroed total found.")
		return nil
	}

	for _, corr := range corrections {
		fmt.Fprintf(c.out, "Fixing order ID %d ('%s')... Old total: 0.00 -> New total: %s\n",
			corr.OrderID, corr.CustomerName, corr.NewTotal.StringFixed(2))
	}
	fmt.Fprintf(c.out, "\n%d orders were corrected in the database.\n", len(corrections))
	return nil
}
