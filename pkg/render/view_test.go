package render

import (
	"context"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
)

func stubResolver() icons.Resolver {
	return icons.ResolverFunc(func(_ context.Context, ref feature.IconRef) (icons.Markup, error) {
		return icons.Markup("<svg><title>" + string(ref) + "</title></svg>"), nil
	})
}

func TestBuildViewPreservesOrder(t *testing.T) {
	view, err := BuildView(context.Background(), stubResolver(), grid.Reference(), RenderOptions{})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	var titles []string
	for _, block := range view.Blocks {
		titles = append(titles, block.Title)
		if block.HeadingTag != "h3" {
			t.Fatalf("heading tag: %s", block.HeadingTag)
		}
	}
	want := []string{"High Performance", "Developer Friendly", "Enterprise Ready"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
	if view.Styles != "" {
		t.Fatalf("styles should be empty by default, got %q", view.Styles)
	}
}

func TestBuildViewEmptyGrid(t *testing.T) {
	view, err := BuildView(context.Background(), nil, grid.Build(feature.List{}), RenderOptions{})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	if view.Blocks == nil || len(view.Blocks) != 0 {
		t.Fatalf("expected empty non-nil blocks, got %#v", view.Blocks)
	}
	if view.SectionClass != "features" {
		t.Fatalf("section class: %s", view.SectionClass)
	}
}

func TestBuildViewPropagatesIconErrors(t *testing.T) {
	failing := icons.ResolverFunc(func(context.Context, feature.IconRef) (icons.Markup, error) {
		return "", icons.ErrIconEmpty
	})
	_, err := BuildView(context.Background(), failing, grid.Reference(), RenderOptions{})
	if !errors.Is(err, icons.ErrIconEmpty) {
		t.Fatalf("expected ErrIconEmpty, got %v", err)
	}
}

func TestStyles(t *testing.T) {
	got := Styles(RenderOptions{
		IncludeStyles: true,
		Theme: &theme.RendererConfig{
			CSSVars: map[string]string{"--brand": "#123456"},
		},
	})
	want := "<link rel=\"stylesheet\" href=\"/assets/featuregrid.css\">\n<style>\n:root {\n  --brand: #123456;\n}\n</style>"
	if got != want {
		t.Fatalf("styles mismatch\nwant: %q\n got: %q", want, got)
	}
}
