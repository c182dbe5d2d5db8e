package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	config "github.com/bingxyi/PedidosAPI-Project/configs"
	"github.com/bingxyi/PedidosAPI-Project/internal/db"
	"github.com/bingxyi/PedidosAPI-Project/internal/handlers"
)

func main() {

	db.Init()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/orders", handlers.GetOrders)
	r.GET("/orders/:id", handlers.GetOrder)
	r.POST("/orders", handlers.CreateOrder)
	r.PUT("/orders/:id", handlers.UpdateOrder)
	r.DELETE("/orders/:id", handlers.DeleteOrder)

	r.GET("/items", handlers.GetItems)
	r.GET("/items/:id", handlers.GetItem)
	r.PUT("/items/:id", handlers.UpdateItem)
	r.DELETE("/items/:id", handlers.DeleteItem)

	cfg := config.LoadServerConfig()
	log.WithField("addr", cfg.Addr).Info("Starting PedidosAPI server")

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
