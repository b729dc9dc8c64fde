// Package http provides the API server, middleware, and metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	"github.com/hireassist/backend/internal/config"
	"github.com/hireassist/backend/internal/metrics"
	userHTTP "github.com/hireassist/backend/internal/user/http"
)

// Server is the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	cfg    *config.Config
	logger *slog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	gin.SetMode(cfg.GetGinMode())

	return &Server{
		cfg:    cfg,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the route tree and middleware chain. Must be called
// before Start. The meter provider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	userHandler *userHTTP.UserHandler,
	meterProvider metric.MeterProvider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(s.logger))

	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, s.cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.cfg.RateLimitEnabled {
		router.Use(IPRateLimitMiddleware(s.cfg.RateLimitRequestsPerSec, s.cfg.RateLimitBurst, s.logger))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api/users")
	{
		if s.cfg.RateLimitEnabled {
			// Tighter buckets for the abuse-prone writes
			registerRPS, registerBurst := PerHour(s.cfg.RateLimitRegisterPerHour)
			updateRPS, updateBurst := PerMinute(s.cfg.RateLimitProfilePerMin)

			api.POST("/register",
				IPRateLimitMiddleware(registerRPS, registerBurst, s.logger),
				userHandler.RegisterHandler)
			api.PUT("/profile/:userId",
				IPRateLimitMiddleware(updateRPS, updateBurst, s.logger),
				userHandler.UpdateProfileHandler)
			api.PUT("/settings/:userId",
				IPRateLimitMiddleware(updateRPS, updateBurst, s.logger),
				userHandler.UpdateSettingsHandler)
		} else {
			api.POST("/register", userHandler.RegisterHandler)
			api.PUT("/profile/:userId", userHandler.UpdateProfileHandler)
			api.PUT("/settings/:userId", userHandler.UpdateSettingsHandler)
		}

		api.GET("/profile/:userId", userHandler.GetProfileHandler)
		api.GET("/validate/:userId", userHandler.ValidateSessionHandler)
		api.GET("/stats", userHandler.StatsHandler)
		api.DELETE("/:userId", userHandler.DeleteUserHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API server. Blocks until the listener stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
