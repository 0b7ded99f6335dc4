// Package middleware provides net/http middleware for the htmlconv server.
//
// This package includes:
//
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//
// Both follow the func(http.Handler) http.Handler shape and mount on a chi
// router with Use. When mounted on chi, the matched route pattern (for
// example "/convert") is used for span names and metric labels so that
// label cardinality stays bounded.
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("htmlconv"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global OpenTelemetry tracer provider unless
// WithTracerProvider is given.
//
// # Prometheus Metrics
//
// NewMetrics registers:
//
//   - htmlconv_http_requests_total: requests by route and status
//   - htmlconv_http_request_duration_seconds: request duration by route
//   - htmlconv_http_requests_in_flight: requests being served
//   - htmlconv_http_websocket_messages_total: WebSocket messages by outcome
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
