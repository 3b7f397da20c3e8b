// Package httpserver provides the admin HTTP server for respkv.
//
// Endpoints:
//
//   - GET /health: liveness and build information
//   - GET /ready: readiness of the RESP listener
//   - GET /metrics: Prometheus exposition
//
// Every route runs behind the RequestID, Recover and AccessLog middleware.
package httpserver
