// Package server exposes terrain generation and path search over HTTP.
//
// Routes:
//
//	GET  /healthz        liveness probe
//	GET  /v1/strategies  registered search strategy names
//	POST /v1/routes      run one search on an explicit or generated grid
//
// Every request is logged with its method, path, status and duration.
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// DefaultMaxCells bounds width×height of any requested grid.
const DefaultMaxCells = 10000

// maxBodyBytes bounds the size of a POST body.
const maxBodyBytes = 1 << 20

// Server routes HTTP requests to the search handlers.
type Server struct {
	router   *mux.Router
	maxCells int
	logger   *log.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithMaxCells sets the largest grid a request may describe.
// Panics if n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic("server: WithMaxCells requires n ≥ 1")
	}
	return func(s *Server) { s.maxCells = n }
}

// WithLogger replaces the standard logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}
	return func(s *Server) { s.logger = l }
}

// New builds a Server with all routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		maxCells: DefaultMaxCells,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(s.logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/strategies", s.handleStrategies).Methods(http.MethodGet)
	v1.HandleFunc("/routes", s.handleRoute).Methods(http.MethodPost)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
