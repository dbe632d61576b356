package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_monitor_pass_total",
		Help: "Stock monitor passes by result",
	}, []string{"result"})

	itemsChecked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_monitor_items_checked_total",
		Help: "Inventory items checked by the stock monitor",
	})

	alertsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_monitor_alerts_created_total",
		Help: "Stock alerts created by priority",
	}, []string{"priority"})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_monitor_orders_created_total",
		Help: "Auto-generated reorder orders",
	})

	itemsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_monitor_items_skipped_total",
		Help: "Inventory items skipped by reason",
	}, []string{"reason"})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "stock_monitor_pass_duration_seconds",
		Help:    "Stock monitor pass duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)
