// Package server serves the feature grid over HTTP: the rendered section, its
// JSON tree, the stylesheet and the sanitised icons.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-featuregrid/internal/platform/logging"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
)

// Options configures a Server.
type Options struct {
	// BasePath prefixes every route.
	BasePath string
	// Renderer is used for the index route when the request names none.
	Renderer string
	// IconMode selects inline SVG or linked icons for HTML output. Linked
	// icons point at the server's icon route.
	IconMode render.IconMode
	// PageTitle is the document title for full-page responses.
	PageTitle string
	// Lang is the document language for full-page responses.
	Lang string
	// ReadHeaderTimeout bounds request header reads in Run.
	ReadHeaderTimeout time.Duration
}

type OptionFn func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Renderer:          vanilla.Name,
		IconMode:          render.IconModeInline,
		PageTitle:         "Features",
		Lang:              "en",
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// WithBasePath mounts the routes below path.
func WithBasePath(path string) OptionFn {
	return func(o *Options) {
		o.BasePath = path
	}
}

// WithRenderer sets the default renderer for the index route.
func WithRenderer(name string) OptionFn {
	return func(o *Options) {
		if name = strings.TrimSpace(name); name != "" {
			o.Renderer = name
		}
	}
}

// WithIconMode sets how HTML responses embed icons.
func WithIconMode(mode render.IconMode) OptionFn {
	return func(o *Options) {
		if mode != "" {
			o.IconMode = mode
		}
	}
}

// WithPageTitle sets the full-page document title.
func WithPageTitle(title string) OptionFn {
	return func(o *Options) {
		if title = strings.TrimSpace(title); title != "" {
			o.PageTitle = title
		}
	}
}

// Server holds the HTTP handlers.
type Server struct {
	orch   *orchestrator.Orchestrator
	icons  icons.Resolver
	assets fs.FS
	logger *slog.Logger
	opts   Options
}

// New builds a Server around orch. The icon resolver serves /icons/ and
// should match the one the orchestrator renders with.
func New(orch *orchestrator.Orchestrator, resolver icons.Resolver, logger *slog.Logger, fns ...OptionFn) *Server {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if orch == nil {
		orch = orchestrator.New()
	}
	if resolver == nil {
		resolver = icons.NewFSResolver(nil)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		orch:   orch,
		icons:  resolver,
		assets: vanilla.AssetsFS(),
		logger: logger,
		opts:   opts,
	}
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.logRequests(mux)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, listener, shutdownTimeout)
}

// Serve is Run over an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return logging.WithLogger(context.Background(), s.logger)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving feature grid", slog.String("addr", listener.Addr().String()))
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
