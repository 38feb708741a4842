// Package server exposes diagram models over HTTP for editor
// integrations.
//
// Each diagram id owns one live model instance. Model instances are
// single-threaded by contract, so every handler serializes access with
// a per-diagram mutex. Models lazy-load from the store on first access
// and persist back on explicit save and on XML replacement.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/mxfile"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/store"
)

// Server holds the live diagram instances and the backing store.
type Server struct {
	store  store.Store
	logger *log.Logger

	mu       sync.Mutex
	diagrams map[string]*diagram
}

// diagram pairs one model with the mutex serializing its mutations.
type diagram struct {
	mu    sync.Mutex
	model *model.Model
}

// New creates a server backed by the given store.
func New(s store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:    s,
		logger:   logger,
		diagrams: make(map[string]*diagram),
	}
}

// Handler builds the chi router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/diagrams", func(r chi.Router) {
		r.Get("/", s.handleListDiagrams)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/stats", s.handleStats)
			r.Get("/xml", s.handleExport)
			r.Put("/xml", s.handleImport)
			r.Post("/save", s.handleSave)
			r.Post("/cells", s.handleAddCell)
			r.Delete("/cells/{cellID}", s.handleDeleteCell)
			r.Post("/edges", s.handleAddEdge)
		})
	})

	return r
}

// logRequests logs one line per request with method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// withDiagram runs fn with the named diagram's mutex held. The diagram
// lazy-loads from the store on first access; a name absent from the
// store starts as an empty model.
func (s *Server) withDiagram(ctx context.Context, id string, fn func(m *model.Model) error) error {
	d, err := s.diagram(ctx, id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.model)
}

func (s *Server) diagram(ctx context.Context, id string) (*diagram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.diagrams[id]; ok {
		return d, nil
	}

	m := model.New()
	rec, err := s.store.Get(ctx, id)
	switch {
	case err == nil:
		if _, err := mxfile.Import(m, rec.XML); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "stored diagram %q is not importable", id)
		}
	case errors.Is(err, errors.ErrCodeDiagramNotFound):
		// New diagram, starts empty.
	default:
		return nil, err
	}

	d := &diagram{model: m}
	s.diagrams[id] = d
	return d, nil
}

// persist exports the model and writes it to the store. Callers hold
// the diagram mutex.
func (s *Server) persist(ctx context.Context, id string, m *model.Model) error {
	xml, err := mxfile.Export(m, mxfile.ExportOptions{})
	if err != nil {
		return err
	}
	return s.store.Put(ctx, &store.Record{Name: id, XML: xml})
}
