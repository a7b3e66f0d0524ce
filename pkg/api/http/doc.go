// Package http provides the demo service HTTP API.
//
// The server exposes four GET routes:
//   - /        landing page
//   - /health  liveness status with process uptime
//   - /info    host and process facts
//   - /metrics Prometheus text exposition
//
// Every other path, and every non-GET method, answers 404 with a JSON
// error body. Every request increments the shared request counter.
package http
