package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockchart/internal/server"
	"github.com/matzehuels/blockchart/pkg/cache"
	"github.com/matzehuels/blockchart/pkg/observability"
	"github.com/matzehuels/blockchart/pkg/pipeline"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		keyScope string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart pipeline over HTTP",
		Long: `Serve the chart pipeline over HTTP.

Endpoints:
  GET  /healthz
  POST /v1/layout
  POST /v1/render/{svg,png,pdf,json}

Chart and render settings from the config file are the defaults for requests.
Set cache.redis_url to share cached results between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache, keyScope)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&keyScope, "cache-prefix", "", "prefix for cache keys, to share one Redis between deployments")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, keyScope string) error {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return err
	}
	var keyer cache.Keyer
	if keyScope != "" {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), keyScope)
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	observability.NewLogHooks(c.Logger).Register()
	defer observability.Reset()

	c.printKeyValue("Address", addr)
	c.printKeyValue("Cache", cacheName(store))

	return server.New(runner, c.Logger, c.Config.PipelineOptions()).ListenAndServe(ctx, addr)
}

// cacheName describes a cache backend for status output.
func cacheName(store cache.Cache) string {
	switch s := store.(type) {
	case *cache.RedisCache:
		return "redis"
	case *cache.FileCache:
		return fmt.Sprintf("file (%s)", s.Dir())
	}
	return "disabled"
}
