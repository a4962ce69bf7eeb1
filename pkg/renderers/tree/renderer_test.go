package tree

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

func decode(t *testing.T, data []byte) Payload {
	t.Helper()
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode payload: %v\n%s", err, data)
	}
	return payload
}

func headings(node *grid.Node) []string {
	var out []string
	row := node.Children[0].Children[0]
	for _, item := range row.Children {
		body := item.Children[1]
		out = append(out, body.Children[0].Text)
	}
	return out
}

func TestRenderer_ReferenceHeadings(t *testing.T) {
	output, err := New().Render(testsupport.Context(), grid.Reference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	payload := decode(t, output)

	want := []string{"High Performance", "Developer Friendly", "Enterprise Ready"}
	if diff := cmp.Diff(want, headings(payload.Tree)); diff != "" {
		t.Fatalf("headings mismatch (-want +got):\n%s", diff)
	}
	if payload.Theme != nil || payload.Icons != nil {
		t.Fatalf("expected no theme or icon map, got %+v", payload)
	}
	if diff := cmp.Diff(grid.Reference().Tree(), payload.Tree, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	renderer := New(WithIndent("  "))
	first, err := renderer.Render(testsupport.Context(), grid.Reference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := renderer.Render(testsupport.Context(), grid.Reference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Fatalf("renders differ:\n%s", diff)
	}
}

func TestRenderer_EmptyGrid(t *testing.T) {
	output, err := New().Render(testsupport.Context(), grid.Build(feature.List{}), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	payload := decode(t, output)
	if payload.Tree.Tag != "section" {
		t.Fatalf("expected section root, got %s", payload.Tree.Tag)
	}
	if got := len(payload.Tree.Children[0].Children[0].Children); got != 0 {
		t.Fatalf("expected empty row, got %d children", got)
	}
}

func TestRenderer_ThemeAndIcons(t *testing.T) {
	options := render.RenderOptions{
		IconMode:      render.IconModeLink,
		IconURLPrefix: "/icons/",
		Theme: &theme.RendererConfig{
			Theme:   "docs",
			Variant: "dark",
			Tokens:  map[string]string{"brand": "#000"},
			CSSVars: map[string]string{"--brand": "#000"},
			AssetURL: func(key string) string {
				if key == "featuregrid.stylesheet" {
					return "/static/grid.css"
				}
				return ""
			},
		},
	}
	output, err := New().Render(testsupport.Context(), grid.Reference(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	payload := decode(t, output)

	wantTheme := &Theme{
		Name:         "docs",
		Variant:      "dark",
		Tokens:       map[string]string{"brand": "#000"},
		CSSVars:      map[string]string{"--brand": "#000"},
		CSSVarsStyle: ":root {\n  --brand: #000;\n}",
		Stylesheet:   "/static/grid.css",
	}
	if diff := cmp.Diff(wantTheme, payload.Theme); diff != "" {
		t.Fatalf("theme mismatch (-want +got):\n%s", diff)
	}
	wantIcons := map[string]string{
		"thanhhoa_performance.svg": "/icons/thanhhoa_performance.svg",
		"thanhhoa_dev.svg":         "/icons/thanhhoa_dev.svg",
		"thanhhoa_security.svg":    "/icons/thanhhoa_security.svg",
	}
	if diff := cmp.Diff(wantIcons, payload.Icons); diff != "" {
		t.Fatalf("icons mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Render(ctx, grid.Reference(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
