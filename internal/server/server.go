// Package server implements the HTTP preview server.
//
// The server holds one plan document in memory and exposes it over a JSON
// API: the document itself, solve and join operations as POST endpoints
// with undo/redo on top, and the assembly diagram as an SVG rendered
// through the artifact cache. All mutations go through a single mutex, so
// concurrent requests see a consistent document.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/history"
	"github.com/matzehuels/planforge/pkg/plan"
)

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 5 * time.Second

// historyLimit is the undo depth kept by the server.
const historyLimit = 50

// Config configures the preview server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// PlanPath is the file the document was loaded from; save writes back
	// to it.
	PlanPath string
}

// Server serves one plan document over HTTP.
type Server struct {
	cfg    Config
	cache  cache.Cache
	keyer  cache.Keyer
	logger *charmlog.Logger

	mu   sync.Mutex
	pl   plan.Plan
	hist *history.Stack
}

// New creates a preview server for the given plan.
func New(cfg Config, pl plan.Plan, c cache.Cache, logger *charmlog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		cache:  c,
		keyer:  cache.NewScopedKeyer(nil, "doc:"+cfg.PlanPath+":"),
		logger: logger,
		pl:     pl,
		hist:   history.New(historyLimit),
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.routes(),
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// routes builds the chi router with all endpoints registered.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/plan", func(r chi.Router) {
		r.Get("/", s.handleGetPlan)
		r.Get("/assembly.svg", s.handleAssemblySVG)
		r.Post("/solve", s.handleSolve)
		r.Post("/join", s.handleJoin)
		r.Post("/unlink", s.handleUnlink)
		r.Post("/offset", s.handleOffset)
		r.Post("/thickness", s.handleThickness)
		r.Post("/undo", s.handleUndo)
		r.Post("/redo", s.handleRedo)
		r.Post("/save", s.handleSave)
	})

	return r
}

// requestLogger logs each request at debug level with its duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

// snapshot returns a deep copy of the current document. Callers must not
// hold the mutex.
func (s *Server) snapshot() plan.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pl.Clone()
}
