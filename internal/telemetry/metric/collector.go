package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreStats is what StoreCollector samples.
type StoreStats interface {
	Len() int
	ExpiredCount(now time.Time) int
}

// StoreCollector reports key counts of the key-value store at scrape time.
type StoreCollector struct {
	store StoreStats
	now   func() time.Time

	keys    *prometheus.Desc
	expired *prometheus.Desc
}

// NewStoreCollector creates a collector over store.
func NewStoreCollector(store StoreStats) *StoreCollector {
	return &StoreCollector{
		store: store,
		now:   time.Now,
		keys: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "keys"),
			"Number of entries held, expired ones included.",
			nil, nil,
		),
		expired: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "expired_keys"),
			"Number of held entries that are past their expiry.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
	ch <- c.expired
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(c.store.Len()))
	ch <- prometheus.MustNewConstMetric(c.expired, prometheus.GaugeValue, float64(c.store.ExpiredCount(c.now())))
}
