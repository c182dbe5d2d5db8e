package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/bingxyi/PedidosAPI-Project/internal/db"
	"github.com/bingxyi/PedidosAPI-Project/internal/models"
	"github.com/bingxyi/PedidosAPI-Project/internal/notifier"
	"github.com/bingxyi/PedidosAPI-Project/internal/store"
)

type OrderItemRequest struct {
	ID          uint    `json:"id"`
	ProductName string  `json:"product_name" binding:"required,max=100"`
	Quantity    int     `json:"quantity" binding:"required,gte=1,lte=9999"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0.01,lte=100000"`
	OrderID     uint    `json:"order_id"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required,min=3,max=100"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
}

type UpdateOrderRequest struct {
	ID           uint               `json:"id"`
	CustomerName string             `json:"customer_name" binding:"required,min=3,max=100"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
}

func GetOrders(c *gin.Context) {
	orders, err := store.New(db.DB).ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := store.New(db.DB).GetOrder(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %d", id)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Items:        toItems(req.Items),
	}

	if err := store.New(db.DB).CreateOrder(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go func(o models.Order) {
		if err := notifier.SendOrderSMS(o.ID, o.CustomerName, o.Total); err != nil {
			log.WithField("order_id", o.ID).Warnf("Failed to send SMS notification: %v", err)
		}
	}(order)

	go func(o models.Order) {
		if err := notifier.SendOrderEmail(o.ID, o.CustomerName, o.Total); err != nil {
			log.WithField("order_id", o.ID).Warnf("Failed to send email notification: %v", err)
		}
	}(order)

	c.Header("Location", fmt.Sprintf("/orders/%d", order.ID))
	c.JSON(http.StatusCreated, order)
}

func UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := models.Order{
		ID:           req.ID,
		CustomerName: req.CustomerName,
		Items:        toItems(req.Items),
	}

	_, err := store.New(db.DB).ReplaceOrder(id, in)
	switch {
	case errors.Is(err, store.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The order ID does not match."})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %d", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := store.New(db.DB).DeleteOrder(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %d", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func toItems(reqs []OrderItemRequest) []models.Item {
	items := make([]models.Item, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, models.Item{
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   decimal.NewFromFloat(r.UnitPrice),
		})
	}
	return items
}

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid id: %q", raw)})
		return 0, false
	}
	return uint(id), true
}
