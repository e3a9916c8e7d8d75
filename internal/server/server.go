package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"storefront/internal/catalog"
	"storefront/internal/handlers"
	"storefront/internal/render"
	"storefront/internal/websocket"
	"storefront/pkg/config"
	"storefront/web"
)

// Server serves the storefront pages
type Server struct {
	config   config.Config
	store    *catalog.Store
	handlers *handlers.Handler
	hub      *websocket.Hub
}

// New creates a server for the given catalog store
func New(cfg config.Config, store *catalog.Store) *Server {
	opts := render.Options{
		TrackOutbound: cfg.TrackOutbound,
		LiveReload:    cfg.LiveReload,
		AssetBase:     "/",
	}

	s := &Server{
		config:   cfg,
		store:    store,
		handlers: handlers.New(store, opts),
	}
	if cfg.LiveReload {
		s.hub = websocket.NewHub(store.Version)
	}
	return s
}

// Handler returns the HTTP handler with all routes registered
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Forwarded headers are client controlled unless a proxy sets them
	if s.config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Operational endpoints are not rate limited
	r.Get("/healthz", s.handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	if s.hub != nil {
		r.Handle("/ws", s.hub)
	}

	r.Group(func(r chi.Router) {
		if s.config.RateLimit > 0 {
			r.Use(httprate.LimitByIP(s.config.RateLimit, s.config.RateWindow))
		}

		r.Get("/styles.css", handlers.StylesHandler)
		r.Handle("/static/*", http.FileServer(http.FS(web.Static)))

		r.Get("/api/catalog", s.handlers.CatalogHandler)
		r.Get("/api/products/{id}", s.handlers.ProductHandler)
		r.Get("/go/{id}", s.handlers.OutboundHandler)

		r.Get("/", s.handlers.PageHandler)
		r.Get("/{slug}", s.handlers.PageHandler)
	})

	return r
}

// Run serves on the listener until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.store.Watch(bgCtx); err != nil {
			logrus.WithError(err).Error("Catalog watcher failed")
		}
	}()

	if s.hub != nil {
		updates, unsubscribe := s.store.Subscribe()
		defer unsubscribe()

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.hub.Run(bgCtx, updates)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logrus.WithFields(logrus.Fields{
		"addr":           ln.Addr().String(),
		"live_reload":    s.config.LiveReload,
		"track_outbound": s.config.TrackOutbound,
		"catalog":        s.store.Path(),
	}).Info("Server started")

	var serveErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		logrus.Info("Shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer shutdownCancel()

		// Close live reload connections first; Shutdown does not wait for hijacked ones.
		cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			serveErr = fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
	}

	cancel()
	wg.Wait()
	logrus.Info("Server stopped")
	return serveErr
}

// ListenAndServe listens on the configured port and runs until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr(), err)
	}
	return s.Run(ctx, ln)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logrus.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
			"remote":     r.RemoteAddr,
		}).Debug("Request served")
	})
}
