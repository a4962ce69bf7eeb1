package tree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

// Name is the registry name of the tree renderer.
const Name = "tree"

// Payload is the JSON document emitted by the renderer.
type Payload struct {
	Tree  *grid.Node `json:"tree"`
	Theme *Theme     `json:"theme,omitempty"`
	// Icons maps icon references to URLs. Only populated in link mode.
	Icons map[string]string `json:"icons,omitempty"`
}

// Theme is the client-facing subset of the renderer theme configuration.
type Theme struct {
	Name         string            `json:"name"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
}

type Option func(*Renderer)

// WithIndent pretty-prints the payload.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer marshals Grid.Tree() as JSON.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, g grid.Grid, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := Payload{
		Tree:  g.Tree(),
		Theme: themeContext(options),
	}
	if options.Mode() == render.IconModeLink {
		payload.Icons = iconURLs(g, options)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("tree renderer: encode payload: %w", err)
	}
	return buf.Bytes(), nil
}

func themeContext(options render.RenderOptions) *Theme {
	cfg := options.Theme
	if cfg == nil {
		return nil
	}
	out := &Theme{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Tokens:       maps.Clone(cfg.Tokens),
		CSSVars:      maps.Clone(cfg.CSSVars),
		CSSVarsStyle: themes.CSSVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		out.Stylesheet = cfg.AssetURL(themes.AssetStylesheet)
	}
	return out
}

func iconURLs(g grid.Grid, options render.RenderOptions) map[string]string {
	urls := make(map[string]string)
	prefix := icons.URLResolver{Prefix: options.IconURLPrefix}
	for _, ref := range g.IconRefs() {
		url := ""
		if options.Theme != nil && options.Theme.AssetURL != nil {
			url = options.Theme.AssetURL(string(ref))
		}
		if url == "" {
			url = prefix.URL(ref)
		}
		urls[string(ref)] = url
	}
	return urls
}
