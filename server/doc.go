// Package server provides the storefront's HTTP server: a Gin engine mounted
// on a ServeMux and served with h2c, wrapped in a server-wide middleware
// chain.
//
// # Middleware
//
// Server-wide (server/middleware, applied by ApplyMiddleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: request id generation and propagation
//   - Tracing: OpenTelemetry server spans
//   - CORS: cross-origin resource sharing
//   - BodySizeLimit: request body size limits
//   - RequestLogger: request logging with duration tracking
//
// Route-scoped (gin handlers): Auth, RateLimiter, Metrics.
//
// # Endpoints
//
// Built-in endpoints (server/endpoint): /health, /info, /metrics.
package server
