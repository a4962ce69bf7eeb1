package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	gotempl "github.com/a-h/templ"

	"github.com/goliatone/go-featuregrid/internal/platform/logging"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
	templrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/templ"
	"github.com/goliatone/go-featuregrid/pkg/renderers/tree"
	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

// Query parameters understood by the index and features routes.
const (
	ParamRenderer = "renderer"
	ParamTheme    = "theme"
	ParamVariant  = "variant"
	ParamPage     = "page"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := strings.TrimSpace(query.Get(ParamRenderer))
	if name == "" {
		name = s.opts.Renderer
	}
	contentType, err := s.orch.ContentType(name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page := isTruthy(query.Get(ParamPage)) && strings.HasPrefix(contentType, "text/html")
	options := s.renderOptions()
	if page {
		options.IncludeStyles = true
		options.StylesheetURL = MountPath(s.opts.BasePath, RouteAssets+vanilla.StylesheetName)
	}

	output, err := s.orch.Generate(r.Context(), orchestrator.Request{
		Renderer:      name,
		ThemeName:     query.Get(ParamTheme),
		ThemeVariant:  query.Get(ParamVariant),
		RenderOptions: options,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if page {
		var buf bytes.Buffer
		doc := templrenderer.Page(templrenderer.PageOptions{
			Title: s.opts.PageTitle,
			Lang:  s.opts.Lang,
		}, gotempl.Raw(string(output)))
		if err := doc.Render(r.Context(), &buf); err != nil {
			s.writeError(w, r, err)
			return
		}
		output = buf.Bytes()
	}

	s.write(w, r, contentType, output)
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	output, err := s.orch.Generate(r.Context(), orchestrator.Request{
		Renderer:      tree.Name,
		ThemeName:     query.Get(ParamTheme),
		ThemeVariant:  query.Get(ParamVariant),
		RenderOptions: s.renderOptions(),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.write(w, r, "application/json; charset=utf-8", output)
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	ref := feature.IconRef(strings.TrimPrefix(r.URL.Path, "/"))
	markup, err := s.icons.Resolve(r.Context(), ref)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	s.write(w, r, "image/svg+xml", []byte(markup))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, "text/plain; charset=utf-8", []byte("ok\n"))
}

func (s *Server) renderOptions() render.RenderOptions {
	options := render.RenderOptions{IconMode: s.opts.IconMode}
	if options.Mode() == render.IconModeLink {
		options.IconURLPrefix = MountPath(s.opts.BasePath, RouteIcons)
	}
	return options
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		slog.Any("error", err),
	)
	http.Error(w, http.StatusText(code), code)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, render.ErrRendererNotFound),
		errors.Is(err, themes.ErrThemeNotFound),
		errors.Is(err, themes.ErrVariantNotFound),
		errors.Is(err, icons.ErrIconNotFound):
		return http.StatusNotFound
	case errors.Is(err, icons.ErrIconEmpty):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isTruthy(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && value
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		ctx := logging.WithLogger(r.Context(), s.logger)
		next.ServeHTTP(rec, r.WithContext(ctx))

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.InfoContext(ctx, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", rec.bytes),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
