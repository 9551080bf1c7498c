package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"s3-audio-translate/internal/api/middleware"
	"s3-audio-translate/internal/api/v1/handlers"
	"s3-audio-translate/internal/api/v1/routes"
	"s3-audio-translate/internal/app/session"
	"s3-audio-translate/internal/config"
)

// Config represents HTTP server configuration
type Config struct {
	config.ServerConfig
	Environment string
	Name        string
	SessionTTL  time.Duration
}

// Server represents one HTTP server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

func newRouter(cfg Config, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", handlers.Health)
	return router
}

func newServer(cfg Config, router *gin.Engine, logger *zap.Logger) *Server {
	return &Server{
		config: cfg,
		router: router,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger.With(zap.String("server", cfg.Name)),
	}
}

// NewAppServer creates the login and transcription server
func NewAppServer(
	cfg Config,
	page *handlers.PageHandler,
	store session.Store,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *Server {
	if cfg.Name == "" {
		cfg.Name = "app"
	}
	router := newRouter(cfg, logger)

	router.Use(middleware.NewHTTPMetrics(registry).Middleware())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	sessionConfig := middleware.DefaultSessionConfig()
	if cfg.SessionTTL > 0 {
		sessionConfig.TTL = cfg.SessionTTL
	}
	sessionConfig.Secure = cfg.Environment == "production"

	pages := router.Group("/")
	pages.Use(middleware.Sessions(store, sessionConfig, logger))
	routes.RegisterRoutes(pages, page)

	return newServer(cfg, router, logger)
}

// NewHelloServer creates the placeholder server answering GET /api/hello
func NewHelloServer(cfg Config, logger *zap.Logger) *Server {
	if cfg.Name == "" {
		cfg.Name = "hello"
	}
	router := newRouter(cfg, logger)
	routes.RegisterHelloRoutes(router)
	return newServer(cfg, router, logger)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("Failed to start server", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
