// Package preview serves a live preview of a document over HTTP. The
// document is reloaded on every request so edits show up on refresh.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/render"
	"github.com/sweiss/logdiary/internal/workspace"
)

// Loader returns the current document.
type Loader func() (*document.Document, error)

// Config holds runtime options for the preview server.
type Config struct {
	Address string
	Load    Loader
	Logger  *zap.Logger
	// Now supplies the comment date. Nil means time.Now.
	Now func() time.Time
}

type server struct {
	load Loader
	log  *zap.Logger
	now  func() time.Time
}

// Handler builds the router.
func Handler(cfg Config) http.Handler {
	s := &server{load: cfg.Load, log: cfg.Logger, now: cfg.Now}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(requestLogger(s.log))
	router.Use(chimw.Recoverer)

	router.Get("/", s.handlePreview)
	router.Get("/export", s.handleExport)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/api/stats", s.handleStats)

	return router
}

// New constructs the HTTP server.
func New(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      Handler(cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, cfg Config) error {
	srv := New(cfg)
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Preview server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("preview server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down preview server: %w", err)
	}
	log.Info("Preview server stopped")
	return nil
}

func (s *server) document(w http.ResponseWriter) (*document.Document, bool) {
	doc, err := s.load()
	if err != nil {
		s.log.Error("Unable to load document", zap.Error(err))
		http.Error(w, "unable to load document", http.StatusInternalServerError)
		return nil, false
	}
	return doc, true
}

const pageBackground = "#f5f5f5"

func (s *server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	doc, ok := s.document(w)
	if !ok {
		return
	}

	body := render.HTML(doc, render.Options{Preview: true, Now: s.now})
	title := doc.CoverTitle
	if title == "" {
		title = "Log Diary"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body style="margin: 0; padding: 20px; background: %s;">%s</body></html>`,
		html.EscapeString(title), pageBackground, body)
}

func (s *server) handleExport(w http.ResponseWriter, _ *http.Request) {
	doc, ok := s.document(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(render.HTML(doc, render.Options{Now: s.now})))
}

func (s *server) handleStats(w http.ResponseWriter, _ *http.Request) {
	doc, ok := s.document(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(workspace.BuildReport(doc.Pages)); err != nil {
		s.log.Warn("Unable to write stats", zap.Error(err))
	}
}

// requestLogger logs each request on completion.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String("request_id", chimw.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.Int("bytes", ww.BytesWritten()),
			}
			switch {
			case status >= http.StatusInternalServerError:
				log.Error("Request completed", fields...)
			case status >= http.StatusBadRequest:
				log.Warn("Request completed", fields...)
			default:
				log.Debug("Request completed", fields...)
			}
		})
	}
}
