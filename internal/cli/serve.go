package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamefeed/internal/aggregator"
	"gamefeed/internal/api"
	"gamefeed/internal/cache"
	"gamefeed/internal/feed/impl"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the feed API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

		var store cache.Store
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Username: cfg.Redis.Username,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()
			store = cache.NewRedis(rdb)
			logger.Info("using redis cache", "addr", cfg.Redis.Addr)
		} else {
			store = cache.NewMemory()
		}

		fetcher := impl.NewFetcher(cfg.FetchTimeout(), cfg.Fetch.UserAgent)
		agg := aggregator.New(fetcher, store, cfg.TTL(), logger)
		server := api.NewServer(cfg, agg, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", cfg.Server.Addr, "sources", len(cfg.Sources))
			if err := server.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
