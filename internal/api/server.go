package api

import (
	"context"
	"log/slog"
	"net/http"

	"gamefeed/internal/aggregator"
	"gamefeed/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type Server struct {
	cfg    *config.Config
	agg    *aggregator.Aggregator
	logger *slog.Logger
	echo   *echo.Echo
}

func NewServer(cfg *config.Config, agg *aggregator.Aggregator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	if cfg.Server.RatePerSecond > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RatePerSecond))))
	}

	server := &Server{
		cfg:    cfg,
		agg:    agg,
		logger: logger,
		echo:   e,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/sources", s.handleSources)

	source := api.Group("/sources/:source")
	source.GET("/top", s.handleCollection)
	source.GET("/latest", s.handleCollection)
	source.GET("/search", s.handleSearch)
	source.GET("/:id", s.handleItem)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "gamefeed",
	})
}

// handleSources lists the configured source keys so clients can discover
// what to ask for.
func (s *Server) handleSources(c echo.Context) error {
	keys := make([]string, 0, len(s.cfg.Sources))
	for _, src := range s.cfg.Sources {
		keys = append(keys, src.Key)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    keys,
	})
}
