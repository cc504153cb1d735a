// Package handler serves the foreground runner's HTTP endpoints.
//
// Routes:
// - /metrics: Prometheus exposition
// - /health: liveness probe
// - /config: the effective emitter configuration as JSON
package handler
