package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	theme "github.com/goliatone/go-theme"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-featuregrid/internal/platform/logging"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/render"
	templrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/templ"
	"github.com/goliatone/go-featuregrid/pkg/renderers/tree"
	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

const (
	defaultRendererName = vanilla.Name

	// SpanName is the name of the span recorded around each Generate call.
	SpanName = "featuregrid.generate"

	tracerName = "github.com/goliatone/go-featuregrid/pkg/orchestrator"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The built-in renderers are not
// added to an injected registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector configures the selector used to resolve request themes.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks replaces the partials merged beneath every selected
// theme. Defaults to themes.DefaultFallbacks().
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = maps.Clone(fallbacks)
	}
}

// WithIconResolver sets the resolver handed to the built-in HTML renderers.
// It has no effect together with WithRegistry.
func WithIconResolver(resolver icons.Resolver) Option {
	return func(o *Orchestrator) {
		o.icons = resolver
	}
}

// WithRecords replaces the default reference list used when a request
// carries no records.
func WithRecords(list feature.List) Option {
	return func(o *Orchestrator) {
		o.records = &list
	}
}

// WithGridOptions appends options applied to every grid.Build call.
func WithGridOptions(options ...grid.Option) Option {
	return func(o *Orchestrator) {
		o.gridOptions = append(o.gridOptions, options...)
	}
}

// WithLogger sets the logger. Without one the orchestrator logs through the
// logger carried on the request context, if any.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTracer sets the tracer used for the generate span. Defaults to the
// global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *Orchestrator) {
		o.tracer = tracer
	}
}

// Orchestrator coordinates the pipeline from feature records to rendered
// output. It applies sensible defaults (reference records, vanilla renderer,
// embedded icons) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	icons           icons.Resolver
	records         *feature.List
	gridOptions     []grid.Option
	logger          *slog.Logger
	tracer          trace.Tracer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector. Both may be
	// empty to select the selector's defaults.
	ThemeName    string
	ThemeVariant string

	// Records overrides the configured feature list for this request. A nil
	// value uses the configured list; an empty, non-nil list renders an empty
	// grid.
	Records *feature.List

	// RenderOptions is passed to the renderer. Theme is filled in when a
	// selector is configured and the field is nil.
	RenderOptions render.RenderOptions
}

// Generate builds the grid for the request records and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (output []byte, err error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.String("featuregrid.renderer", renderer.Name()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	options := req.RenderOptions
	gridOptions := o.gridOptions
	if options.Theme == nil && o.themeSelector != nil {
		cfg, err := o.selectTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}
	if options.Theme != nil {
		span.SetAttributes(
			attribute.String("featuregrid.theme", options.Theme.Theme),
			attribute.String("featuregrid.theme_variant", options.Theme.Variant),
		)
		if overrides := themes.Classes(options.Theme); overrides != (grid.Classes{}) {
			gridOptions = append(gridOptions[:len(gridOptions):len(gridOptions)], grid.WithClasses(overrides))
		}
	}

	list := o.recordsFor(req)
	g := grid.Build(list, gridOptions...)
	span.SetAttributes(attribute.Int("featuregrid.blocks", len(g.Blocks)))

	output, err = renderer.Render(ctx, g, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.loggerFor(ctx).DebugContext(ctx, "feature grid rendered",
		slog.String("renderer", renderer.Name()),
		slog.Int("blocks", len(g.Blocks)),
		slog.Int("bytes", len(output)),
	)
	return output, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// ContentType reports the content type of the named renderer, or of the
// default renderer when name is empty.
func (o *Orchestrator) ContentType(name string) (string, error) {
	renderer, err := o.rendererFor(name)
	if err != nil {
		return "", err
	}
	return renderer.ContentType(), nil
}

func (o *Orchestrator) selectTheme(name, variant string) (*theme.RendererConfig, error) {
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return themes.RendererConfig(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) recordsFor(req Request) feature.List {
	if req.Records != nil {
		return *req.Records
	}
	if o.records != nil {
		return *o.records
	}
	return feature.Reference()
}

func (o *Orchestrator) loggerFor(ctx context.Context) *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return logging.FromContext(ctx)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.icons == nil {
		o.icons = icons.NewFSResolver(nil)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		html, err := vanilla.New(vanilla.WithIconResolver(o.icons))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(html)
		}
		o.registry.MustRegister(templrenderer.New(templrenderer.WithIconResolver(o.icons)))
		o.registry.MustRegister(tree.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = themes.DefaultFallbacks()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
}
