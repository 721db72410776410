// Package server exposes the HTTP preview and inline editing API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen/internal/store"
	"github.com/goliatone/go-resumegen/pkg/export"
	"github.com/goliatone/go-resumegen/pkg/preview"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// Config holds server dependencies. Nil fields get defaults.
type Config struct {
	Addr    string
	Store   store.Store
	Preview *preview.Preview
	Formats *render.Registry
	Logger  *zap.Logger
}

// Server is the HTTP API.
type Server struct {
	store    store.Store
	preview  *preview.Preview
	formats  *render.Registry
	logger   *zap.Logger
	spec     *openapi3.T
	specJSON []byte
	sessions *sessions

	handler    http.Handler
	httpServer *http.Server
}

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

// New validates the API description and wires every route.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		store:   cfg.Store,
		preview: cfg.Preview,
		formats: cfg.Formats,
		logger:  cfg.Logger,
	}
	if s.store == nil {
		s.store = store.NewMemory()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.preview == nil {
		s.preview = preview.New(preview.WithLogger(s.logger))
	}
	if s.formats == nil {
		s.formats = render.NewRegistry()
		if err := export.Register(s.formats, export.PDF{}); err != nil {
			return nil, err
		}
	}
	s.sessions = newSessions(s.store)

	spec, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	s.spec = spec
	if s.specJSON, err = marshalOpenAPI(spec); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	for _, r := range s.routes() {
		if !documented(spec, r.method, r.path) {
			return nil, fmt.Errorf("server: route %s %s is missing from the openapi document", r.method, r.path)
		}
		mux.HandleFunc(r.method+" "+r.path, r.handler)
	}
	s.handler = s.withLogging(mux)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() []route {
	return []route{
		{http.MethodGet, "/health", s.handleHealth},
		{http.MethodGet, "/openapi.json", s.handleOpenAPI},
		{http.MethodGet, "/templates", s.handleTemplates},
		{http.MethodGet, "/variants/{section}", s.handleVariants},
		{http.MethodGet, "/resumes", s.handleListResumes},
		{http.MethodPost, "/resumes", s.handleCreateResume},
		{http.MethodGet, "/resumes/{id}", s.handleGetResume},
		{http.MethodDelete, "/resumes/{id}", s.handleDeleteResume},
		{http.MethodGet, "/resumes/{id}/preview", s.handlePreview},
		{http.MethodPost, "/resumes/{id}/edits", s.handleEdit},
		{http.MethodPost, "/resumes/{id}/actions", s.handleAction},
		{http.MethodGet, "/resumes/{id}/export.txt", s.handleExport("text")},
		{http.MethodGet, "/resumes/{id}/export.pdf", s.handleExport("pdf")},
	}
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Replace swaps the document stored under id and refreshes any open edit
// session, e.g. after the source file changed on disk.
func (s *Server) Replace(ctx context.Context, id string, data resume.ResumeData) error {
	if _, err := s.store.Save(ctx, store.Record{ID: id, Data: data}); err != nil {
		return err
	}
	s.sessions.forget(id)
	return nil
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	<-errCh
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

type errorBody struct {
	Error   string              `json:"error"`
	Details []resume.FieldError `json:"details,omitempty"`
}

func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	body := errorBody{Error: err.Error()}
	var verr *resume.ValidationError
	if errors.As(err, &verr) {
		body.Error = "validation failed"
		body.Details = verr.Errors
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.jsonResponse(w, status, body)
}
