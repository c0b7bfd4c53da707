// Package httpapi serves the assistant tools over plain HTTP.
//
// Every route registers its OpenAPI operation as it is mounted, so
// /openapi.json always describes exactly what the router serves.
package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/HendryAvila/assistant-tools/internal/openapi"
	"github.com/HendryAvila/assistant-tools/internal/utility"
)

// DefaultInfo describes the API in the OpenAPI document.
var DefaultInfo = openapi.Info{
	Title:       "AI Assistant Tools",
	Description: "Tools that can be used by AI assistants.",
	Version:     "0.0.1",
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Server routes HTTP requests to the memory service and the utility tools.
type Server struct {
	svc    *memory.Service
	clock  utility.Clock
	logger *slog.Logger
	apiKey string
	info   openapi.Info
	mounts []mount

	mux *http.ServeMux
	doc *openapi.Document
}

type mount struct {
	pattern string
	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithAPIKey enables the access gate. An empty key leaves it disabled.
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// WithClock overrides the clock used by /datetime.
func WithClock(c utility.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// WithInfo overrides the OpenAPI info block.
func WithInfo(info openapi.Info) Option {
	return func(s *Server) { s.info = info }
}

// WithMount serves h at pattern behind the same gate and logging as the
// built-in routes. It is not described in the OpenAPI document.
func WithMount(pattern string, h http.Handler) Option {
	return func(s *Server) { s.mounts = append(s.mounts, mount{pattern, h}) }
}

// New builds the router.
func New(svc *memory.Service, opts ...Option) (*Server, error) {
	s := &Server{
		svc:    svc,
		clock:  utility.SystemClock,
		logger: slog.Default(),
		info:   DefaultInfo,
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = openapi.New(s.info)

	if err := s.routes(); err != nil {
		return nil, err
	}
	for _, m := range s.mounts {
		s.mux.Handle(m.pattern, m.handler)
	}
	return s, nil
}

// Handler returns the root handler with request logging and the access
// gate applied.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	if s.apiKey != "" {
		h = requireKey(s.apiKey, h)
	}
	return logRequests(s.logger, h)
}

// Document returns the OpenAPI document built from the registered routes.
func (s *Server) Document() *openapi.Document {
	return s.doc
}

// route mounts h and describes it in the OpenAPI document.
func (s *Server) route(method, path string, op openapi.Operation, h http.HandlerFunc) error {
	if err := s.doc.Add(method, path, op); err != nil {
		return fmt.Errorf("httpapi: %w", err)
	}
	s.mux.HandleFunc(method+" "+path, h)
	return nil
}
