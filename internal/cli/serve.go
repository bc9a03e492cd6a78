package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/brepml/brepgraph/internal/api"
	"github.com/brepml/brepgraph/pkg/cache"
	"github.com/brepml/brepgraph/pkg/pipeline"
	"github.com/brepml/brepgraph/pkg/store"
)

// shutdownTimeout bounds graceful HTTP shutdown after interrupt.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for the HTTP conversion API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		Long: `Run the HTTP conversion API.

The serve command exposes the conversion pipeline over HTTP. Documents are
POSTed to /v1/convert; converted graphs can be stored and retrieved under
/v1/graphs. Storage uses MongoDB when server.mongo_uri is configured and an
in-memory store otherwise; caching uses Redis when cache.redis_url is set
and the local file cache otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires up the cache, store, and runner, then serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	cc, err := c.newServeCache(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.Close(shutdownCtx); err != nil {
			c.Logger.Warn("store close failed", "error", err)
		}
	}()

	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.New(runner, st, c.Logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newServeCache picks the cache backend for the server: Redis when
// configured, otherwise the local file cache.
func (c *CLI) newServeCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if url := c.Config.Cache.RedisURL; url != "" {
		c.Logger.Debug("using redis cache", "url", url)
		return cache.NewRedisCache(ctx, url)
	}
	return c.newCache(false)
}

// newStore picks the graph store for the server: MongoDB when configured,
// otherwise in-memory.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if uri := c.Config.Server.MongoURI; uri != "" {
		c.Logger.Debug("using mongodb store", "database", c.Config.Server.MongoDatabase)
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      uri,
			Database: c.Config.Server.MongoDatabase,
		})
	}
	return store.NewMemoryStore(), nil
}
