// Package crcmetrics instruments the table manager's process-scoped
// cache (internal/crccache) with Prometheus counters, grounded on
// syncthing-syncthing's use of github.com/prometheus/client_golang for
// its own service-level counters. The CRC kernels themselves stay
// uninstrumented: they are synchronous, bounded loops with no
// asynchrony, and adding metrics inside them would put an atomic
// operation on the per-byte hot path for no operational benefit.
package crcmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the registry cmd/crcsum's optional --metrics-addr listener
// serves. It is package-level (not global default) so library users who
// embed this package never have to worry about colliding with their own
// process's default registry.
var Registry = prometheus.NewRegistry()

var tableCacheHits = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "crcbox_table_cache_hits_total",
		Help: "Table manager lookups that found an already-built table.",
	},
	[]string{"kind"},
)

var tableCacheMisses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "crcbox_table_cache_misses_total",
		Help: "Table manager lookups that had to build and insert a new table.",
	},
	[]string{"kind"},
)

func init() {
	Registry.MustRegister(tableCacheHits, tableCacheMisses)
}

// RecordTableCacheHit records a cache hit for the given table kind
// ("bytewise" or "wordwise").
func RecordTableCacheHit(kind string) {
	tableCacheHits.WithLabelValues(kind).Inc()
}

// RecordTableCacheMiss records a cache miss for the given table kind.
func RecordTableCacheMiss(kind string) {
	tableCacheMisses.WithLabelValues(kind).Inc()
}
