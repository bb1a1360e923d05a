// Package server serves the explorer live: the state machine is held
// server-side and every click is a request.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/highlight"
	"github.com/ziadkadry99/codeview/internal/logging"
	"github.com/ziadkadry99/codeview/internal/metrics"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
	Title    string
	Theme    config.Theme
}

// Server is the live explorer.
type Server struct {
	cfg         Config
	mu          sync.Mutex
	state       *explorer.State
	highlighter highlight.Highlighter
	log         *zap.Logger
	router      chi.Router
	httpServer  *http.Server
}

// New creates a server around state. Handlers run concurrently, so every
// access to state goes through the server's mutex.
func New(cfg Config, state *explorer.State, h highlight.Highlighter, logger *zap.Logger) *Server {
	if h == nil {
		h = highlight.NewHTML(highlight.StyleFor(cfg.Theme))
	}
	s := &Server{
		cfg:         cfg,
		state:       state,
		highlighter: h,
		log:         logging.OrNop(logger),
	}
	dirs, files := state.Forest().Count()
	metrics.SetTreeSize(dirs, files)

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(s.log))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", s.handlePage)
	r.Get("/style.css", s.handleStyle)
	r.Route("/nodes", func(r chi.Router) {
		r.Post("/toggle", s.handleToggle)
		r.Post("/select", s.handleSelect)
		r.Post("/collapse", s.handleCollapse)
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.handleTree)
		r.Get("/state", s.handleState)
		r.Post("/panel", s.handlePanel)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("codeview server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
