// Package monitoring provides Prometheus metrics for the backend: HTTP
// request counters and latencies, persisted mode selections, policy
// lookups, and WebSocket connection gauges. Each collector owns a private
// registry exposed through Handler.
package monitoring
