package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ExchangesRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aftersales_exchanges_registered_total",
		Help: "Total number of product exchanges successfully registered.",
	})

	ReturnsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aftersales_returns_registered_total",
		Help: "Total number of customer returns successfully registered.",
	})

	FlagUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aftersales_flag_updates_total",
		Help: "Total number of lifecycle flag updates, by entity type.",
	},
		[]string{"entity"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aftersales_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ExchangeCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aftersales_exchange_cache_items",
		Help: "Current number of open exchanges in the cache.",
	})
)
