package templ

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	gotempl "github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

func stubIcons() icons.Resolver {
	return icons.ResolverFunc(func(_ context.Context, ref feature.IconRef) (icons.Markup, error) {
		return icons.Markup(`<svg viewBox="0 0 24 24"><title>` + string(ref) + `</title></svg>`), nil
	})
}

func TestRenderer_ReferenceGolden(t *testing.T) {
	renderer := New(WithIconResolver(stubIcons()))

	output, err := renderer.Render(testsupport.Context(), grid.Reference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/reference.golden.html", output)
}

func TestRenderer_MatchesVanilla(t *testing.T) {
	list := feature.NewList(
		feature.MustNew("Alpha", "a.svg", "first <strong>bold</strong>"),
		feature.MustNew("Beta", "b.svg", "second"),
	)
	cases := map[string]render.RenderOptions{
		"inline": {},
		"link":   {IconMode: render.IconModeLink, IconURLPrefix: "/icons"},
		"styles": {IncludeStyles: true},
	}
	grids := map[string]grid.Grid{
		"reference": grid.Reference(),
		"custom":    grid.Build(list, grid.WithHeadingAnchors(true)),
		"empty":     grid.Build(feature.List{}),
		"quoted": grid.Build(feature.NewList(
			feature.MustNew(`Say "hi" & 'bye' <now>`, `q"1.svg`, "plain"),
		), grid.WithHeadingAnchors(true)),
	}

	html, err := vanilla.New(vanilla.WithIconResolver(stubIcons()))
	if err != nil {
		t.Fatalf("vanilla: %v", err)
	}
	components := New(WithIconResolver(stubIcons()))

	for gridName, g := range grids {
		for optName, options := range cases {
			t.Run(gridName+"/"+optName, func(t *testing.T) {
				want, err := html.Render(testsupport.Context(), g, options)
				if err != nil {
					t.Fatalf("vanilla render: %v", err)
				}
				got, err := components.Render(testsupport.Context(), g, options)
				if err != nil {
					t.Fatalf("templ render: %v", err)
				}
				if diff := cmp.Diff(string(want), string(got)); diff != "" {
					t.Fatalf("output mismatch (-vanilla +templ):\n%s", diff)
				}
			})
		}
	}
}

func TestRenderer_IconFailure(t *testing.T) {
	missing := icons.ResolverFunc(func(context.Context, feature.IconRef) (icons.Markup, error) {
		return "", icons.ErrIconNotFound
	})
	_, err := New(WithIconResolver(missing)).Render(testsupport.Context(), grid.Reference(), render.RenderOptions{})
	if !errors.Is(err, icons.ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
}

func TestPage(t *testing.T) {
	body := gotempl.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>\n")
		return err
	})

	var b strings.Builder
	err := Page(PageOptions{Title: "Docs & Guides", StylesheetURL: "/assets/featuregrid.css"}, body).
		Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Page() = %v", err)
	}
	got := b.String()
	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">",
		"<title>Docs &amp; Guides</title>",
		`<link rel="stylesheet" href="/assets/featuregrid.css">`,
		"<main>\n<p>body</p>\n</main>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in page, got %q", want, got)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestSection_StopsOnWriteError(t *testing.T) {
	view, err := render.BuildView(context.Background(), stubIcons(), grid.Reference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	if err := Section(view).Render(context.Background(), failingWriter{}); err == nil {
		t.Fatalf("expected write error")
	}
}
