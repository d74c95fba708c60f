package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AmeyaGadhave/Misinfo-Detector/internal/server"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/cache"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/detect"
)

// newServeCmd creates the serve command for the dashboard API server.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		Long: `Serve runs the HTTP API the browser dashboard talks to. It proxies
detection requests through the verdict cache and renders knowledge-graph
payloads server-side (svg, png, dot, json).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// runServe wires the detector and cache and blocks until ctx ends.
func runServe(ctx context.Context, addr string) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	store, err := cache.Open(ctx, cfg.Cache.CacheOptions())
	if err != nil {
		logger.Warnf("Cache unavailable, continuing without: %v", err)
		store = cache.NewNullCache()
	}
	defer store.Close()

	detector := detect.NewClient(cfg.Service.BaseURL,
		detect.WithTimeout(cfg.Service.Timeout()),
		detect.WithCache(store, cfg.Cache.TTL()),
	)

	return server.New(detector, logger).ListenAndServe(ctx, addr)
}
