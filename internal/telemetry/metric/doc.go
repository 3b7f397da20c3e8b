// Package metric provides Prometheus metrics for respkv.
//
//   - prometheus.go: the Registry of connection, command and decode metrics
//   - collector.go: StoreCollector, which samples the key-value store on scrape
//
// Metrics are exposed at /metrics by the admin HTTP server.
package metric
