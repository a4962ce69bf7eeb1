package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/render"
	rendertemplate "github.com/goliatone/go-featuregrid/pkg/render/template"
	gotemplate "github.com/goliatone/go-featuregrid/pkg/render/template/gotemplate"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

// Name is the registry name of the vanilla renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	icons            icons.Resolver
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir searches a directory on disk before the template bundle.
// Files shadow bundled ones by relative path, e.g. templates/feature.tmpl.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithIconResolver replaces the embedded icon resolver.
func WithIconResolver(resolver icons.Resolver) Option {
	return func(cfg *config) {
		if resolver != nil {
			cfg.icons = resolver
		}
	}
}

// Renderer writes the grid as an HTML section through a template engine.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	icons     icons.Resolver
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.icons == nil {
		cfg.icons = icons.NewFSResolver(nil)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, icons: cfg.icons}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the feature template once per block and the section
// template around the results. Themes can swap either template through the
// "featuregrid.section" and "featuregrid.feature" partials.
func (r *Renderer) Render(ctx context.Context, g grid.Grid, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view, err := render.BuildView(ctx, r.icons, g, options)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	featureTemplate := themes.Partial(options.Theme, themes.PartialFeature, themes.DefaultFeatureTemplate)
	items := make([]string, 0, len(view.Blocks))
	for _, block := range view.Blocks {
		item, err := r.templates.RenderTemplate(featureTemplate, map[string]any{
			"block": block,
		})
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: render block %q: %w", block.Key, err)
		}
		items = append(items, item)
	}

	sectionTemplate := themes.Partial(options.Theme, themes.PartialSection, themes.DefaultSectionTemplate)
	result, err := r.templates.RenderTemplate(sectionTemplate, map[string]any{
		"view":  view,
		"items": items,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
