// Package observability wires OpenTelemetry tracing and metrics plus a
// Prometheus scrape registry for the storefront API.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, cfg.TracerConfig(name, version), log)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "orders.create")
//	defer span.End()
//
// Metrics:
//
//	metrics, err := observability.NewMetrics(observability.Meter(name))
//	metrics.RecordRequest(ctx, "GET", "/api/products", 200, duration)
//
// Scrape endpoint:
//
//	prom := observability.NewPrometheus("storefront")
//	engine.GET("/metrics", gin.WrapH(prom.Handler()))
package observability
