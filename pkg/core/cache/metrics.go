package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports the statistics of a cache as prometheus metrics. A nil
// cache reports zeros.
type Collector struct {
	cache *Cache

	hits   *prometheus.Desc
	misses *prometheus.Desc
	items  *prometheus.Desc
}

// NewCollector creates a collector for c. Metric names are built from
// namespace and subsystem, e.g. tantalum_parser_cache_hits_total.
func NewCollector(c *Cache, namespace, subsystem string) *Collector {
	return &Collector{
		cache: c,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "hits_total"),
			"Cache lookups that found an entry.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "misses_total"),
			"Cache lookups that found no entry.",
			nil, nil,
		),
		items: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "items"),
			"Entries currently held, expired ones included until cleanup.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.items
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	var s Stats
	if c.cache != nil {
		s = c.cache.Stats()
	}
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.items, prometheus.GaugeValue, float64(s.Items))
}
