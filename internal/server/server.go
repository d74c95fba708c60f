// Package server implements the dashboard HTTP API.
//
// The server fronts the analysis service for the browser dashboard:
// it proxies detection requests through the verdict cache and renders
// knowledge-graph payloads server-side in several formats. Routing is
// chi; every request carries an X-Request-ID and is logged structured
// via charmbracelet/log.
//
// # Endpoints
//
//   - GET  /                     service status JSON
//   - POST /api/detect           analyze an article URL, returns the verdict
//   - POST /api/graph/{format}   render a graph payload (svg, png, dot, json)
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/detect"
)

// Detector analyzes article URLs. *detect.Client implements it; tests
// substitute a stub.
type Detector interface {
	Detect(ctx context.Context, articleURL string) (*detect.Verdict, error)
}

// Server is the dashboard API server.
type Server struct {
	detector Detector
	logger   *log.Logger
}

// New creates a server around the given detector.
func New(detector Detector, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{detector: detector, logger: logger}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/", s.handleStatus)
	r.Post("/api/detect", s.handleDetect)
	r.Post("/api/graph/{format}", s.handleGraph)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
