// Package host serves a map definition over HTTP.
//
// The host is the bridge between the stateless engine and stateful
// consumers: it owns sessions (one value map per consumer), applies clicks
// through the mode state machine, and serves rendered passes. The engine
// itself never learns about HTTP; everything here delegates to pipeline.
//
// # Endpoints
//
//	POST /sessions                   create a session seeded from the map's
//	                                 initial values
//	GET  /sessions/{id}/value        mode-specific value export
//	POST /sessions/{id}/click        apply a click, returns the new values
//	GET  /sessions/{id}/render       rendered SVG, ?hover= names a region
//	GET  /healthz                    liveness and map identity
package host

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mlenz/regionmap/pkg/cache"
	"github.com/mlenz/regionmap/pkg/observability"
	"github.com/mlenz/regionmap/pkg/pipeline"
	"github.com/mlenz/regionmap/pkg/session"
)

// renderTTL bounds how long cached SVG output is served. Entries are keyed
// by content hash, so staleness only matters for cache growth.
const renderTTL = time.Hour

// Server hosts one map definition.
type Server struct {
	runner  *pipeline.Runner
	store   session.Store
	cache   cache.Cache
	keyer   cache.Keyer
	logger  *log.Logger
	defHash string
	ttl     time.Duration
}

type Option func(*Server)

// WithStore sets the session backend. Defaults to an in-memory store.
func WithStore(s session.Store) Option { return func(srv *Server) { srv.store = s } }

// WithCache sets the render cache. Defaults to an in-memory cache.
func WithCache(c cache.Cache) Option { return func(srv *Server) { srv.cache = c } }

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(srv *Server) { srv.logger = l } }

// WithSessionTTL overrides the session lifetime. Zero disables expiry.
func WithSessionTTL(ttl time.Duration) Option { return func(srv *Server) { srv.ttl = ttl } }

// New creates a server for the runner's map definition.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner: runner,
		ttl:    session.DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = session.NewMemoryStore()
	}
	if s.cache == nil {
		s.cache = cache.NewMemoryCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	// The definition is immutable at runtime, so its hash is computed once
	// and reused as the cache key component for every render.
	defJSON, _ := json.Marshal(runner.Def())
	s.defHash = cache.Hash(defJSON)
	return s
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/value", s.handleValue)
			r.Post("/click", s.handleClick)
			r.Get("/render", s.handleRender)
		})
	})
	return r
}

// requestLogger emits one debug line and one host hook event per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.Host().OnRequest(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"elapsed", elapsed.Round(time.Microsecond))
	})
}
