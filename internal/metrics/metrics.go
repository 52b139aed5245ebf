package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated The total number of reservations persisted (counter)
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Name:      "created_total",
			Help:      "The total number of created reservations",
		},
	)

	// OrdersSettled settlement outcomes by resulting status (counter)
	OrdersSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orders",
			Name:      "settled_total",
			Help:      "The total number of settled orders by resulting status",
		},
		[]string{"status"},
	)

	// OrdersExpired pending orders failed by the expiry sweep (counter)
	OrdersExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Name:      "expired_total",
			Help:      "The total number of pending orders failed by the expiry sweep",
		},
	)

	// PricesReplaced price rows written by set price calls (counter)
	PricesReplaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pricing",
			Name:      "replaced_total",
			Help:      "The total number of price rows replaced",
		},
		[]string{"kind"},
	)

	// GatewayRequestDuration time spent in payment gateway calls (summary with quantiles 0.5, 0.9, and 0.99)
	GatewayRequestDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "gateway",
			Name:       "request_duration_seconds",
			Help:       "The time spent in payment gateway calls",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation", "outcome"},
	)
)
