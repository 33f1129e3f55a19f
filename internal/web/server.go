package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kozaktomas/mrzname/internal/config"
	"github.com/kozaktomas/mrzname/internal/extract"
	"github.com/kozaktomas/mrzname/internal/metrics"
	"github.com/kozaktomas/mrzname/internal/mrz"
	"github.com/kozaktomas/mrzname/internal/web/handlers"
	"github.com/kozaktomas/mrzname/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *config.Config
	router     *chi.Mux
	httpServer *http.Server
	logger     *zap.SugaredLogger
	metrics    *metrics.Metrics
	extractor  *extract.Extractor
	cleaner    mrz.Cleaner
	jobManager *handlers.JobManager
}

// NewServer creates a new web server. The extractor and cleaner are built
// from cfg.Extraction.
func NewServer(cfg *config.Config, logger *zap.SugaredLogger, m *metrics.Metrics) (*Server, error) {
	synth, err := cfg.Extraction.Synthesizer()
	if err != nil {
		return nil, fmt.Errorf("configuring extraction: %w", err)
	}

	r := chi.NewRouter()
	s := &Server{
		config:     cfg,
		router:     r,
		logger:     logger,
		metrics:    m,
		extractor:  extract.New(synth),
		cleaner:    synth.Cleaner,
		jobManager: handlers.NewJobManager(),
	}

	// Set up middleware stack
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Observe(logger, m))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(5 * time.Minute))
	r.Use(middleware.CORS(middleware.ParseAllowedOrigins(cfg.Web.AllowedOrigins)))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port),
		Handler:      r,
		ReadTimeout:  2 * time.Minute, // Large entity uploads
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Infow("starting web server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down web server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// Router returns the chi router for testing
func (s *Server) Router() *chi.Mux {
	return s.router
}
