package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
	"github.com/KirkDiggler/prizedraw/internal/sse"
)

const (
	defaultDrawWaitTimeout = 10 * time.Second

	// maxBodyBytes bounds request bodies; every body here is tiny
	maxBodyBytes = 1 << 16
)

// Config holds configuration for the HTTP server
type Config struct {
	// Board service
	Board board.Service

	// Optional SSE hub; /api/v1/events is only mounted when set
	Hub *sse.Hub

	// Port to listen on
	Port string

	// DrawWaitTimeout caps how long ?wait=true holds a draw request
	DrawWaitTimeout time.Duration

	Logger *slog.Logger
}

// Server is the HTTP adapter for the board
type Server struct {
	httpServer      *http.Server
	board           board.Service
	hub             *sse.Hub
	validator       *Validator
	drawWaitTimeout time.Duration
	logger          *slog.Logger
}

// NewServer creates the server and its routes
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Board == nil {
		return nil, errors.New("board service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.DrawWaitTimeout
	if timeout <= 0 {
		timeout = defaultDrawWaitTimeout
	}

	s := &Server{
		board:           cfg.Board,
		hub:             cfg.Hub,
		validator:       NewValidator(),
		drawWaitTimeout: timeout,
		logger:          logger.With("component", "http"),
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// SSE streams never go idle on their own, so Shutdown would wait them out
	if s.hub != nil {
		s.httpServer.RegisterOnShutdown(s.hub.Stop)
	}

	return s, nil
}

// Router builds the chi router
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check and metrics routes (unversioned)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/board", func(r chi.Router) {
			r.Get("/", s.handleGetBoard)
			r.Post("/draw", s.handleDraw)
			r.Post("/reset", s.handleReset)
			r.Post("/modal/close", s.handleCloseModal)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload", s.handleReload)
		})

		if s.hub != nil {
			r.Get("/events", sse.Handler(s.hub, s.snapshot))
		}
	})

	return r
}

// Start listens until the server is stopped
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// snapshot renders the current board for new SSE clients
func (s *Server) snapshot(ctx context.Context) (presenter.View, error) {
	state, err := s.board.GetState(ctx)
	if err != nil {
		return presenter.View{}, err
	}
	return presenter.Render(state), nil
}
