// Package metrics exposes Prometheus counters for the ledger's mutating
// operations. The HTTP layer serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConsumeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_consume_total",
		Help: "Completed FEFO consumptions.",
	})
	CheckoutTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_checkout_total",
		Help: "Completed equipment checkouts.",
	})
	ReturnTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_return_total",
		Help: "Completed equipment returns.",
	})
	InsufficientStockTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_insufficient_stock_total",
		Help: "Consumptions rejected for insufficient stock.",
	})
	ConflictTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_conflict_total",
		Help: "Operations that exhausted concurrent-transaction retries.",
	})
)
