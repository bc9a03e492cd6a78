// Package api implements the brepgraph HTTP conversion service.
//
// The service accepts shape documents, converts them into typed
// heterogeneous graphs, and optionally persists the results in a graph
// store. Routes are mounted under /v1:
//
//	POST   /v1/convert      convert a document (body) into a graph
//	GET    /v1/graphs       list stored graphs
//	GET    /v1/graphs/{id}  fetch a stored graph
//	DELETE /v1/graphs/{id}  delete a stored graph
//	GET    /healthz         liveness probe
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brepml/brepgraph/pkg/pipeline"
	"github.com/brepml/brepgraph/pkg/store"
)

// =============================================================================
// Server
// =============================================================================

// Server bundles the pipeline runner and graph store behind an HTTP router.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server with the given runner and store. A nil logger falls
// back to the default logger.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// routes builds the chi router with middleware and route bindings.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/graphs", s.handleListGraphs)
		r.Get("/graphs/{id}", s.handleGetGraph)
		r.Delete("/graphs/{id}", s.handleDeleteGraph)
	})

	return r
}
