package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/devopslabs/demoapi/internal/monitor"
	"github.com/devopslabs/demoapi/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the HTTP API server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	monitor *monitor.Monitor
	metrics *prometheus.Collector
	logger  *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port    int
	Monitor *monitor.Monitor
	Metrics *prometheus.Collector
	Logger  *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	// Counting runs ahead of routing so unmatched paths and the
	// /metrics scrape itself are tallied.
	router.Use(countRequests(cfg.Metrics))
	router.Use(responseHeaders())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger))

	s := &Server{
		router:  router,
		monitor: cfg.Monitor,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/info", s.handleInfo)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Unknown paths and non-GET methods on known paths both land here.
	s.router.NoRoute(s.handleNotFound)
}

// Start starts the HTTP server. Failure to bind the port is returned as
// an error; the caller decides whether it is fatal.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server: it stops accepting new
// connections and releases the listening port.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
