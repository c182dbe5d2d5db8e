package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bingxyi/PedidosAPI-Project/internal/db"
	"github.com/bingxyi/PedidosAPI-Project/internal/models"
	"github.com/bingxyi/PedidosAPI-Project/internal/store"
)

type UpdateItemRequest struct {
	ID          uint    `json:"id"`
	ProductName string  `json:"product_name" binding:"required,max=100"`
	Quantity    int     `json:"quantity" binding:"required,gte=1,lte=9999"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0.01,lte=100000"`
	OrderID     uint    `json:"order_id" binding:"required"`
}

func GetItems(c *gin.Context) {
	items, err := store.New(db.DB).ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := store.New(db.DB).GetItem(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item not found with ID: %d", id)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem overwrites the item in place. The owning order's stored total is
// left alone on purpose; the repair scan or a full order replacement is what
// brings it back in line.
func UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := models.Item{
		ID:          req.ID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		OrderID:     req.OrderID,
	}

	err := store.New(db.DB).UpdateItem(id, in)
	switch {
	case errors.Is(err, store.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The item ID does not match."})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item not found with ID: %d", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := store.New(db.DB).DeleteItem(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item not found with ID: %d", id)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}
