// Package viewer implements the stateless share-link viewer: an HTTP
// server with no database, no session, and no outbound calls. Its only
// input is the request URL; the d query parameter carries the encoded
// document payload, and any decode failure renders the same generic
// "invalid link" page.
package viewer

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fieldware/fieldbill/internal/logging"
	"github.com/fieldware/fieldbill/internal/share"
	"github.com/fieldware/fieldbill/internal/viewer/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Server is the viewer HTTP server.
type Server struct {
	addr   string
	logger logging.Logger
	router chi.Router
}

// NewServer builds the viewer with its routes and middleware.
func NewServer(cfg *config.Config, logger logging.Logger) *Server {
	s := &Server{addr: cfg.EndpointAddr, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/view/{kind}/{id}", s.handleView)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info(ctx, "viewer listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	kind, ok := share.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		s.renderInvalid(w)
		return
	}

	// Tokens are percent-encoded by contract; take the raw query value so
	// the codec sees exactly what the producer emitted, not net/http's
	// already-decoded form.
	token := rawQueryValue(r.URL.RawQuery, "d")
	payload := share.Decode(token)
	if payload == nil {
		s.renderInvalid(w)
		return
	}

	s.render(w, "document.html", buildDocumentView(kind, *payload))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderInvalid is the single failure surface: every bad link, whatever the
// cause, gets the same page with no error detail.
func (s *Server) renderInvalid(w http.ResponseWriter) {
	s.render(w, "invalid.html", nil)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(context.Background(), "template execution failed", "template", name, "error", err)
	}
}

// rawQueryValue returns the still-encoded value of key from a raw query
// string, or "" when absent.
func rawQueryValue(rawQuery, key string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		if value, ok := strings.CutPrefix(pair, key+"="); ok {
			return value
		}
	}
	return ""
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
