package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_orders_created_total",
		Help: "Number of orders created through any surface.",
	})

	TotalsRepaired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_totals_repaired_total",
		Help: "Number of orders whose zero total was rewritten by the repair scan.",
	})
)
