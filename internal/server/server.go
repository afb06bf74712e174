// Package server exposes the chart pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz            liveness and build version
//	GET  /shapes             registered shape names
//	POST /render?format=svg  render the chart document in the request body
//
// Documents posted to /render must carry their data inline; file references
// are rejected. The body is JSON unless Content-Type names TOML.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartgeom/pkg/buildinfo"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/core/shape"
	cgerrors "github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/observability"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// Defaults for request handling.
const (
	DefaultMaxBody        = 1 << 20
	DefaultRequestTimeout = 30 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithMaxBody bounds the size of posted documents in bytes.
func WithMaxBody(n int64) Option { return func(s *Server) { s.maxBody = n } }

// WithTimeout bounds the time spent on one request.
func WithTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// Server serves chart renders.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	maxBody int64
	timeout time.Duration
	router  chi.Router
}

// New returns a server rendering through runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:  runner,
		maxBody: DefaultMaxBody,
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = runner.Logger
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/shapes", s.handleShapes)
	r.Post("/render", s.handleRender)
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Resolved(),
	})
}

func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"shapes": shape.Default.Names()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, r, cgerrors.Wrap(cgerrors.ErrCodeInvalidInput, err, "unsupported format %q", format))
		return
	}
	var scale float64
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 8 {
			s.fail(w, r, cgerrors.New(cgerrors.ErrCodeInvalidInput, "scale must be a number in (0, 8], got %q", v))
			return
		}
		scale = f
	}
	if bg := q.Get("background"); bg != "" {
		if err := cgerrors.ValidateColor(bg); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{
				Error: "document too large",
				Code:  string(cgerrors.ErrCodeInvalidInput),
			})
			return
		}
		s.fail(w, r, cgerrors.Wrap(cgerrors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	docFormat := chart.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "toml") {
		docFormat = chart.FormatTOML
	}
	doc, err := chart.Decode(body, docFormat)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document:   doc,
		Formats:    []string{format},
		Scale:      scale,
		Background: q.Get("background"),
		Refresh:    q.Has("refresh"),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	cacheState := "MISS"
	if result.CacheInfo.RenderHit {
		cacheState = "HIT"
	}
	h := w.Header()
	h.Set("Content-Type", pipeline.ContentType(format))
	h.Set("X-Chart-Hash", result.DocHash)
	h.Set("X-Chart-Shapes", strconv.Itoa(result.Stats.Shapes))
	h.Set("X-Cache", cacheState)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = cgerrors.Wrap(cgerrors.ErrCodeInternal, err, "request cancelled")
	}
	status := cgerrors.HTTPStatus(err)
	if status >= 500 {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorBody{
		Error:     cgerrors.UserMessage(err),
		Code:      string(cgerrors.GetCode(err)),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
