package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
)

var testIcon = grid.Icon{Ref: "spark.svg", Class: "featureSvg", Role: "img"}

func TestIconMarkupInline(t *testing.T) {
	resolver := icons.ResolverFunc(func(_ context.Context, ref feature.IconRef) (icons.Markup, error) {
		return icons.Markup(`<svg viewbox="0 0 1 1"><title>` + string(ref) + `</title></svg>`), nil
	})
	got, err := IconMarkup(context.Background(), resolver, testIcon, RenderOptions{})
	if err != nil {
		t.Fatalf("icon markup: %v", err)
	}
	want := `<svg class="featureSvg" role="img" viewbox="0 0 1 1"><title>spark.svg</title></svg>`
	if got != want {
		t.Fatalf("inline markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestIconMarkupInlineErrors(t *testing.T) {
	if _, err := IconMarkup(context.Background(), nil, testIcon, RenderOptions{}); err == nil {
		t.Fatalf("expected error without resolver")
	}
	failing := icons.ResolverFunc(func(context.Context, feature.IconRef) (icons.Markup, error) {
		return "", icons.ErrIconNotFound
	})
	_, err := IconMarkup(context.Background(), failing, testIcon, RenderOptions{})
	if !errors.Is(err, icons.ErrIconNotFound) {
		t.Fatalf("expected wrapped ErrIconNotFound, got %v", err)
	}
}

func TestIconMarkupLink(t *testing.T) {
	got, err := IconMarkup(context.Background(), nil, testIcon, RenderOptions{
		IconMode:      IconModeLink,
		IconURLPrefix: "/icons",
	})
	if err != nil {
		t.Fatalf("icon markup: %v", err)
	}
	want := `<img src="/icons/spark.svg" class="featureSvg" role="img" alt="">`
	if got != want {
		t.Fatalf("link markup mismatch\nwant: %s\n got: %s", want, got)
	}

	themed, err := IconMarkup(context.Background(), nil, testIcon, RenderOptions{
		IconMode: IconModeLink,
		Theme: &theme.RendererConfig{
			AssetURL: func(key string) string { return "/themes/acme/" + key },
		},
	})
	if err != nil {
		t.Fatalf("icon markup: %v", err)
	}
	if !strings.Contains(themed, `src="/themes/acme/spark.svg"`) {
		t.Fatalf("expected theme asset url, got %s", themed)
	}
}

func TestStylesheetLink(t *testing.T) {
	if got := StylesheetLink(RenderOptions{}, "featuregrid.stylesheet", "/assets/featuregrid.css"); got != `<link rel="stylesheet" href="/assets/featuregrid.css">` {
		t.Fatalf("fallback link: %s", got)
	}
	opts := RenderOptions{StylesheetURL: "/custom.css"}
	if got := StylesheetLink(opts, "k", "/fallback.css"); !strings.Contains(got, "/custom.css") {
		t.Fatalf("explicit url ignored: %s", got)
	}
	if got := StylesheetLink(RenderOptions{}, "k", ""); got != "" {
		t.Fatalf("expected no link, got %s", got)
	}
}
