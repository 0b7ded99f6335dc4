// Package server exposes conversions over HTTP and WebSocket.
//
// Routes:
//
//	POST /convert   convert one document; JSON service.Request in, service.Response out.
//	                A text/html body is taken as the markup, with options in the query.
//	GET  /ws        WebSocket; every text frame is markup (or a JSON request),
//	                every reply is a JSON envelope {"result": ...} or {"error": ...}
//	GET  /metrics   Prometheus metrics, when a registry is configured
//	GET  /healthz   liveness probe
//
// Errors are JSON {"error": {"code", "message", "detail"}} with a status derived
// from the error code.
//
//	srv := server.New(converter, &server.ServerConfig{Address: ":8080"})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
