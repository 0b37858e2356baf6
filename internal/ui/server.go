// Package ui provides the ACRONYM web dashboard server.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/ui/notifier"
	"github.com/leapstack-labs/acronym/internal/ui/router"
	"github.com/leapstack-labs/acronym/internal/viewstate"
	"golang.org/x/sync/errgroup"
)

// Defaults for document pruning.
const (
	DefaultIdleTimeout   = 30 * time.Minute
	DefaultPruneInterval = time.Minute
)

// Server is the main UI server.
type Server struct {
	app           *common.App
	port          int
	watch         bool
	idleTimeout   time.Duration
	pruneInterval time.Duration
	logger        *slog.Logger
}

// Config holds configuration for the UI server.
type Config struct {
	Store         *catalog.Store
	Port          int
	Watch         bool
	Dev           bool
	SessionSecret string
	PageSize      int
	IdleTimeout   time.Duration
	PruneInterval time.Duration
	Logger        *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	prune := cfg.PruneInterval
	if prune <= 0 {
		prune = DefaultPruneInterval
	}

	return &Server{
		app: &common.App{
			Store:    cfg.Store,
			Docs:     viewstate.NewRegistry(),
			Sessions: sessionStore,
			Notifier: notifier.New(),
			Pages:    common.Pages{},
			PageSize: cfg.PageSize,
			IsDev:    cfg.Dev,
			Logger:   logger,
		},
		port:          cfg.Port,
		watch:         cfg.Watch,
		idleTimeout:   idle,
		pruneInterval: prune,
		logger:        logger,
	}
}

// Handler builds the routed HTTP handler.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.app); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Only an external catalog file can change under us.
	if s.watch && s.app.Store.Path() != "" {
		eg.Go(func() error {
			return s.watchCatalog(egctx)
		})
	}

	eg.Go(func() error {
		s.pruneDocuments(egctx)
		return nil
	})

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// App returns the shared feature dependencies.
func (s *Server) App() *common.App {
	return s.app
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.app.Notifier
}

// pruneDocuments releases tabs that lost their stream without a clean close.
func (s *Server) pruneDocuments(ctx context.Context) {
	ticker := time.NewTicker(s.pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.app.Docs.Prune(s.idleTimeout); n > 0 {
				s.logger.Debug("pruned idle documents", "count", n, "remaining", s.app.Docs.Len())
			}
		}
	}
}

// watchCatalog reloads the catalog when its file changes and re-renders
// every open tab.
func (s *Server) watchCatalog(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	path, err := filepath.Abs(s.app.Store.Path())
	if err != nil {
		return err
	}
	// Editors replace files on save, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		s.logger.Error("failed to watch catalog", "path", path, "error", err)
		// Don't fail - continue without watching
		return nil
	}

	// Debounce timer
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !sameFile(event.Name, path) {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, s.reloadCatalog)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// reloadCatalog swaps in the edited catalog and notifies every stream.
// A broken file keeps the previous snapshot.
func (s *Server) reloadCatalog() {
	if err := s.app.Store.Reload(); err != nil {
		s.logger.Error("catalog reload failed", "path", s.app.Store.Path(), "error", err)
		return
	}
	n := s.app.Notifier.Broadcast()
	s.logger.Info("catalog reloaded", "path", s.app.Store.Path(), "streams", n)
}

func sameFile(name, path string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == path
}
