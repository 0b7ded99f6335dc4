package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlconv/pkg/server"
	"github.com/vango-dev/htmlconv/pkg/service"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port           int
		host           string
		metrics        bool
		allowedOrigins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion server",
		Long: `Start an HTTP server exposing conversions.

Routes:
  POST /convert   JSON request or text/html body
  GET  /ws        WebSocket, one conversion per text message
  GET  /metrics   Prometheus metrics (unless --metrics=false)
  GET  /healthz   liveness probe

Examples:
  htmlconv serve
  htmlconv serve --port=9000 --host=0.0.0.0
  htmlconv serve --allow-origin=https://app.example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("port") {
				cfg.Server.Port = port
			}
			if f.Changed("host") {
				cfg.Server.Host = host
			}
			if f.Changed("metrics") {
				cfg.Server.Metrics = metrics
			}
			if f.Changed("allow-origin") {
				cfg.Server.AllowedOrigins = allowedOrigins
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			converter := service.New(service.Options{
				MaxDepth: cfg.MaxDepth,
				Registry: reg,
			})

			srvConfig := &server.ServerConfig{
				Address:      cfg.Server.Addr(),
				MaxBodyBytes: cfg.MaxInputBytes,
				Defaults:     requestDefaults(cfg),
			}
			if len(cfg.Server.AllowedOrigins) > 0 {
				srvConfig.CheckOrigin = server.AllowOrigins(cfg.Server.AllowedOrigins...)
			}
			if cfg.Server.Metrics {
				srvConfig.Registry = reg
			}

			out := cmd.ErrOrStderr()
			printBanner(out)
			success(out, "Listening on http://%s", cfg.Server.Addr())
			if cfg.Server.Metrics {
				info(out, "Metrics at http://%s/metrics", cfg.Server.Addr())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(converter, srvConfig).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlconv.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlconv.json)")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "Expose Prometheus metrics at /metrics")
	cmd.Flags().StringSliceVar(&allowedOrigins, "allow-origin", nil, "Origins allowed to open WebSocket connections (repeatable)")

	return cmd
}
