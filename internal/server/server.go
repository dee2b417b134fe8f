package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/omnicalc/backend/internal/api/http"
	"github.com/omnicalc/backend/internal/api/middleware"
	"github.com/omnicalc/backend/internal/config"
	"github.com/omnicalc/backend/internal/logging"
	"github.com/omnicalc/backend/internal/monitoring"
	"github.com/omnicalc/backend/internal/navigation"
	"github.com/omnicalc/backend/internal/policy"
	"github.com/omnicalc/backend/internal/settings"
	"github.com/omnicalc/backend/internal/ws"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router   *gin.Engine
	http     *http.Server
	manifest *navigation.Manifest
	hub      *ws.Hub
	logger   *logging.Logger
}

// New assembles the full service: policy gate, manifest, settings store,
// metrics, WebSocket hub, and routes.
func New(cfg *config.Config, logger *logging.Logger) *Server {
	metrics := monitoring.NewMetrics()

	gate := policy.New(policy.Config{
		Available: cfg.Policy.GraphingAvailable,
		Endpoint:  cfg.Policy.Endpoint,
		Path:      cfg.Policy.Path,
		Timeout:   cfg.Policy.Timeout,
	}, logger, metrics)

	// The manifest is built once here; every request reads the same
	// immutable table. A policy change requires a restart, which also
	// refreshes the cached policy decision.
	manifest := navigation.BuildManifest(gate)
	logger.Info("navigation manifest built",
		zap.Int("modes", manifest.Len()),
		zap.Bool("graphing_available", gate.FeatureAvailable()),
		zap.Bool("graphing_enabled", gate.FeatureEnabled()))

	store := settings.NewStore(cfg.Settings.Path, logger)
	hub := ws.NewHub(logger, metrics)
	handlers := apihttp.NewHandlers(manifest, store, hub, metrics, logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Navigation registry
	router.GET("/menu", handlers.Menu)
	router.GET("/modes", handlers.ListModes)
	router.GET("/modes/:name", handlers.GetMode)

	// Persisted selection
	router.GET("/selection", handlers.GetSelection)
	router.PUT("/selection", handlers.PutSelection)

	// Accelerator dispatch
	router.POST("/accelerator", handlers.Accelerator)

	// Selection change stream
	router.GET("/ws", hub.HandleConnection)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
		manifest: manifest,
		hub:      hub,
		logger:   logger.WithComponent("server"),
	}
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
