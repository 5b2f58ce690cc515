package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/pkg/cache"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tractor_orders",
		Subsystem: "service",
		Name:      "orders_created_total",
		Help:      "Total number of created draft orders.",
	})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tractor_orders",
		Subsystem: "service",
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions by target status.",
	}, []string{"status"})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tractor_orders",
		Subsystem: "service",
		Name:      "mutations_total",
		Help:      "Total number of order mutations by operation and result.",
	}, []string{"operation", "result"})

	cacheStale = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tractor_orders",
		Subsystem: "cache",
		Name:      "stale_total",
		Help:      "Total number of cached snapshots replaced because a newer version was stored.",
	})

	customersSynced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tractor_orders",
		Subsystem: "service",
		Name:      "customers_synced_total",
		Help:      "Total number of customer directory upserts by result.",
	}, []string{"result"})
)

var rejections = []error{
	entities.ErrOrderNotFound,
	entities.ErrItemNotFound,
	entities.ErrCatalogItemNotFound,
	entities.ErrItemUnavailable,
	entities.ErrItemTypeMismatch,
	entities.ErrInvalidQuantity,
	entities.ErrInvalidDiscount,
	entities.ErrInvalidState,
	entities.ErrEmptyOrder,
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	for _, target := range rejections {
		if errors.Is(err, target) {
			return "rejected"
		}
	}
	if errors.Is(err, entities.ErrVersionConflict) {
		return "conflict"
	}
	return "error"
}

// RegisterCacheMetrics экспортирует счётчики кэша заказов
func RegisterCacheMetrics(stats func() cache.Stats) {
	counter := func(name, help string, value func(cache.Stats) uint64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "tractor_orders",
			Subsystem: "cache",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(value(stats())) })
	}

	prometheus.MustRegister(
		counter("hits_total", "Total number of order cache hits.", func(s cache.Stats) uint64 { return s.Hits }),
		counter("misses_total", "Total number of order cache misses.", func(s cache.Stats) uint64 { return s.Misses }),
		counter("evictions_total", "Total number of entries evicted by capacity.", func(s cache.Stats) uint64 { return s.Evictions }),
		counter("expirations_total", "Total number of entries dropped after ttl.", func(s cache.Stats) uint64 { return s.Expirations }),
	)
}
