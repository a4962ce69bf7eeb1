package templ

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

// Name is the registry name of the templ renderer.
const Name = "templ"

type Option func(*Renderer)

// WithIconResolver replaces the embedded icon resolver.
func WithIconResolver(resolver icons.Resolver) Option {
	return func(r *Renderer) {
		if resolver != nil {
			r.icons = resolver
		}
	}
}

// Renderer emits the same markup as the vanilla renderer using compiled
// components instead of templates.
type Renderer struct {
	icons icons.Resolver
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.icons == nil {
		r.icons = icons.NewFSResolver(nil)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, g grid.Grid, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	view, err := render.BuildView(ctx, r.icons, g, options)
	if err != nil {
		return nil, fmt.Errorf("templ renderer: %w", err)
	}

	var buf bytes.Buffer
	if err := Section(view).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("templ renderer: render section: %w", err)
	}
	return buf.Bytes(), nil
}
