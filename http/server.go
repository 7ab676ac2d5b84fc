package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/dochub"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// ShutdownTimeout is the time given for outstanding requests to finish.
const ShutdownTimeout = 5 * time.Second

// Server serves the search API and rendered document pages.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Bind address to open.
	Addr string

	Logger *slog.Logger

	// Limiter bounds search requests. Nil means unlimited.
	Limiter *rate.Limiter

	SearchService   dochub.SearchService
	DocumentService dochub.DocumentService

	// Page rendering.
	Fetcher   dochub.Fetcher
	Converter dochub.Converter
	Renderer  dochub.Renderer
}

// NewServer returns a new Server with routes registered. Services must be
// set before the server handles requests.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router: chi.NewRouter(),
		Logger: slog.New(slog.DiscardHandler),
	}
	s.server.Handler = s

	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/documents", s.handleDocumentIndex)
		r.Get("/documents/{id}", s.handleDocumentView)
		r.Get("/documents/{id}/toc", s.handleDocumentTOC)
	})
	s.router.Get("/pages/{id}", s.handlePage)

	return s
}

// ServeHTTP routes the request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"ready":  s.SearchService.Ready(),
	})
}
