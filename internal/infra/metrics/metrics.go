// Package metrics exposes Prometheus counters for order and inventory activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "isdn"

// Metrics holds the service's Prometheus collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated         prometheus.Counter
	OrdersCancelled       prometheus.Counter
	StockDebits           prometheus.Counter
	InsufficientStockHits prometheus.Counter
}

// New creates the registry and registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Number of orders successfully created.",
		}),
		OrdersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_cancelled_total",
			Help:      "Number of orders cancelled and restocked.",
		}),
		StockDebits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_debits_total",
			Help:      "Number of successful inventory debits.",
		}),
		InsufficientStockHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_insufficient_stock_total",
			Help:      "Number of debits rejected for insufficient stock.",
		}),
	}

	registry.MustRegister(m.OrdersCreated, m.OrdersCancelled, m.StockDebits, m.InsufficientStockHits)

	return m
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
