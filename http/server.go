package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/kamar"
	"github.com/google/uuid"
)

// DefaultAnalyzeTimeout bounds a single analysis request.
const DefaultAnalyzeTimeout = 60 * time.Second

// maxRequestBody caps the size of an analyze request body.
const maxRequestBody = 1 << 20

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

// Server serves the web form and the JSON analysis API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Bind address for the server's listener.
	Addr string

	// Analyzer handles analysis requests. Must be set before Open.
	Analyzer kamar.Analyzer

	// Logger receives one record per request. Nil discards them.
	Logger *slog.Logger

	// Timeout bounds each analysis request.
	Timeout time.Duration
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		router:  http.NewServeMux(),
		Timeout: DefaultAnalyzeTimeout,
	}
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /api/analyze", s.handleAnalyze)
	return s
}

// Open begins listening on the bind address and serves in the background.
func (s *Server) Open() (err error) {
	if s.Analyzer == nil {
		return kamar.Errorf(kamar.EINVALID, "analyzer required")
	}
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP tags the request with an ID, routes it and logs the outcome.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set("X-Request-ID", id)
	rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

	defer func(begin time.Time) {
		s.logger().Info("http request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(begin),
		)
	}(time.Now())

	s.router.ServeHTTP(rw, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger().Error("render index", "err", err)
	}
}

type analyzeRequest struct {
	Keyword string `json:"keyword"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.writeError(w, r, kamar.Errorf(kamar.EINVALID, "invalid JSON body"))
		return
	}

	ctx := r.Context()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	result, err := s.Analyzer.Analyze(ctx, req.Keyword)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeError writes err as JSON with the status matching its code.
// Internal errors are logged and their details hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := kamar.ErrorCode(err), kamar.ErrorMessage(err)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code, message = kamar.EUNAVAILABLE, "analysis timed out"
	case errors.Is(err, context.Canceled):
		code, message = kamar.ECANCELED, "analysis canceled"
	}
	if code == kamar.EINTERNAL {
		s.logger().Error("analyze failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, ErrorStatusCode(code), map[string]string{"error": message})
}

// ErrorStatusCode returns the HTTP status code for an error code.
func ErrorStatusCode(code string) int {
	switch code {
	case kamar.EINVALID:
		return http.StatusBadRequest
	case kamar.ENOTFOUND:
		return http.StatusNotFound
	case kamar.ECANCELED:
		return http.StatusConflict
	case kamar.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// statusWriter records the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
