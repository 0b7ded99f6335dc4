package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlconv/pkg/service"
)

// ServerConfig configures the server.
type ServerConfig struct {
	// Address is the listen address.
	// Default: ":8080"
	Address string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	// Default: 4096 each.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates WebSocket upgrade origins.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// MaxBodyBytes limits request bodies and WebSocket messages.
	// Default: 10MB.
	MaxBodyBytes int64

	// Defaults are applied to every request before the client's own fields.
	Defaults service.Request

	// Registry enables request metrics and the /metrics route.
	Registry *prometheus.Registry

	// TracerProvider supplies request spans. Defaults to the global provider.
	TracerProvider trace.TracerProvider

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10s.
	ShutdownTimeout time.Duration

	// HTTP server timeouts.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// WSWriteTimeout bounds each WebSocket reply.
	// Default: 10s.
	WSWriteTimeout time.Duration
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       SameOriginCheck,
		MaxBodyBytes:      10 << 20,
		Defaults:          service.Request{Format: service.FormatHTML},
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		WSWriteTimeout:    10 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	defaults := DefaultServerConfig()
	if c == nil {
		return defaults
	}
	clone := *c
	if clone.Address == "" {
		clone.Address = defaults.Address
	}
	if clone.ReadBufferSize == 0 {
		clone.ReadBufferSize = defaults.ReadBufferSize
	}
	if clone.WriteBufferSize == 0 {
		clone.WriteBufferSize = defaults.WriteBufferSize
	}
	if clone.CheckOrigin == nil {
		clone.CheckOrigin = defaults.CheckOrigin
	}
	if clone.MaxBodyBytes == 0 {
		clone.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if clone.ShutdownTimeout == 0 {
		clone.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if clone.ReadHeaderTimeout == 0 {
		clone.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if clone.ReadTimeout == 0 {
		clone.ReadTimeout = defaults.ReadTimeout
	}
	if clone.WriteTimeout == 0 {
		clone.WriteTimeout = defaults.WriteTimeout
	}
	if clone.IdleTimeout == 0 {
		clone.IdleTimeout = defaults.IdleTimeout
	}
	if clone.WSWriteTimeout == 0 {
		clone.WSWriteTimeout = defaults.WSWriteTimeout
	}
	if clone.Logger == nil {
		clone.Logger = slog.Default()
	}
	return &clone
}

// SameOriginCheck validates that the WebSocket request origin matches the host.
// Requests without an Origin header (curl, server-side clients) pass.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := r.Host
	if host == "" {
		return false
	}

	return originURL.Host == host
}

// AllowOrigins returns an origin check that accepts same-origin requests and
// the listed origins. "*" accepts every origin.
func AllowOrigins(origins ...string) func(r *http.Request) bool {
	if slices.Contains(origins, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		if SameOriginCheck(r) {
			return true
		}
		return slices.Contains(origins, r.Header.Get("Origin"))
	}
}
