package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abelzeko/metro-bot/internal/api/middleware"
	"github.com/abelzeko/metro-bot/internal/guide"
	"github.com/abelzeko/metro-bot/internal/usecases"
)

// maxBodyBytes caps tool and prompt argument payloads
const maxBodyBytes = 64 << 10

// Server is the HTTP bridge a plugin host uses to call tools and read
// resources and prompts
type Server struct {
	useCase *usecases.MetroUseCase
	logger  *log.Logger

	srv *http.Server
}

// NewServer creates a bridge server listening on addr
func NewServer(addr string, useCase *usecases.MetroUseCase, logger *log.Logger) *Server {
	s := &Server{
		useCase: useCase,
		logger:  logger,
	}

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.Security)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Processing-Time"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/tools", s.listToolsHandler)
		r.Post("/tools/{name}", s.callToolHandler)
		r.Get("/resources", s.listResourcesHandler)
		r.Get("/resources/{name}", s.readResourceHandler)
		r.Get("/prompts", s.listPromptsHandler)
		r.Post("/prompts/{name}", s.renderPromptHandler)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Printf("api: starting server on %s", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		s.logger.Printf("api: server stopped")
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Print("api: shutting down server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Printf("api: error during server shutdown: %v", err)
		return err
	}
	return nil
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.useCase.Tools())
}

func (s *Server) callToolHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := s.useCase.FindTool(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown tool " + name})
		return
	}

	args, err := decodeArgs(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeText(w, http.StatusOK, tool.Invoke(r.Context(), args))
}

func (s *Server) listResourcesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, guide.Resources())
}

func (s *Server) readResourceHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	res, ok := guide.FindResource(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown resource " + name})
		return
	}
	writeText(w, http.StatusOK, res.Text)
}

func (s *Server) listPromptsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, guide.Prompts())
}

func (s *Server) renderPromptHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	prompt, ok := guide.FindPrompt(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown prompt " + name})
		return
	}

	args, err := decodeArgs(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	text, err := prompt.Render(args)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeText(w, http.StatusOK, text)
}

// decodeArgs reads a JSON object of string arguments. An empty body means no arguments.
func decodeArgs(r *http.Request) (map[string]string, error) {
	args := map[string]string{}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&args)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.New("request body must be a JSON object of string arguments")
	}
	return args, nil
}

// helper for consistent JSON responses.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}
