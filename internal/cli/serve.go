package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/internal/server"
	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command that exposes rendering over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render pipeline over HTTP",
		Long: `Start an HTTP server that renders organization files posted to
/api/v1/render. Rendered images are cached in Redis when --redis-url is
set, otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(cfgPath, c.Logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}
			if cmd.Flags().Changed("redis-url") {
				cfg.Cache.RedisURL = redisURL
			}

			ctx := cmd.Context()
			runner, err := c.newServeRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			return c.serve(ctx, cfg.Serve.Addr, server.New(runner, loggerFromContext(ctx)).Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "cache rendered images in Redis (redis://host:port/db)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the rendered-image cache")

	return cmd
}

// newServeRunner prefers a Redis cache, scoped to the serve key space, over
// the file cache.
func (c *CLI) newServeRunner(ctx context.Context, cfg Config, noCache bool) (*pipeline.Runner, error) {
	if noCache || cfg.Cache.RedisURL == "" {
		return c.newRunner(cfg, noCache), nil
	}
	rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":"), c.Logger)
	if cfg.Cache.TTL.Duration > 0 {
		r.TTL = cfg.Cache.TTL.Duration
	}
	c.Logger.Info("using redis cache")
	return r, nil
}

// serve runs an HTTP server until ctx is cancelled.
func (c *CLI) serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printSuccess(c.Stderr, "Listening on %s", addr)
	printDetail(c.Stderr, "POST /api/v1/render?format=svg")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
