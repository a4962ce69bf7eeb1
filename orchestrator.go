package featuregrid

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

// RenderOptions describes per-request options renderers use to customise
// their output.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request for callers that only import the root
// package.
type Request = orchestrator.Request

// HomepageFeatures returns the homepage features section: the reference
// feature list laid out as a grid with default classes.
func HomepageFeatures() grid.Grid {
	return grid.Reference()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the configured feature list (the reference list by
// default) with the named renderer. An empty name selects vanilla.
func GenerateHTML(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Renderer: rendererName,
	})
}

// WithRecords renders list instead of the reference list.
func WithRecords(list feature.List) orchestrator.Option {
	return orchestrator.WithRecords(list)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
