package featuregrid

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

func TestHomepageFeatures(t *testing.T) {
	g := HomepageFeatures()
	want := []string{"High Performance", "Developer Friendly", "Enterprise Ready"}
	if diff := cmp.Diff(want, g.Titles()); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g, HomepageFeatures()); diff != "" {
		t.Fatalf("HomepageFeatures not stable:\n%s", diff)
	}
	if g.SectionClass != "features" || g.Blocks[0].Icon.Class != "featureSvg" {
		t.Fatalf("unexpected classes: %+v", g)
	}
}

func TestGenerateHTML(t *testing.T) {
	output, err := GenerateHTML(context.Background(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	if !strings.HasPrefix(html, `<section class="features">`) {
		t.Fatalf("expected section root:\n%s", html)
	}
	if got := strings.Count(html, `<div class="col col--4"`); got != 3 {
		t.Fatalf("expected 3 columns, got %d", got)
	}
}

func TestGenerateHTMLWithRecords(t *testing.T) {
	list := feature.NewList(feature.MustNew("Only", feature.IconDeveloper, "one"))
	output, err := GenerateHTML(context.Background(), "tree", WithRecords(list))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `"text":"Only"`) {
		t.Fatalf("expected custom record in tree output:\n%s", output)
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/section.tmpl"); err != nil {
		t.Fatalf("section template: %v", err)
	}
	if _, err := fs.Stat(AssetsFS(), "featuregrid.css"); err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	if _, err := fs.Stat(IconsFS(), string(feature.IconSecurity)); err != nil {
		t.Fatalf("icon: %v", err)
	}
}

func TestLoaders(t *testing.T) {
	files := fstest.MapFS{
		"features.yaml":    {Data: []byte("features:\n  - title: One\n    icon: a.svg\n    description: first\n")},
		"themes/docs.yaml": {Data: []byte("name: docs\nversion: 1.0.0\ntokens:\n  brand: \"#000\"\n")},
	}

	list, err := LoadFeatures(files, "features.yaml")
	if err != nil {
		t.Fatalf("load features: %v", err)
	}
	if diff := cmp.Diff([]string{"One"}, list.Titles()); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}

	themesFS, err := fs.Sub(files, "themes")
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	selector, err := LoadThemes(themesFS, "docs", "")
	if err != nil {
		t.Fatalf("load themes: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "docs" {
		t.Fatalf("selected %q", selection.Theme)
	}

	output, err := GenerateHTML(context.Background(), "tree", WithThemeSelector(selector))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `"cssVars":{"--brand":"#000"}`) {
		t.Fatalf("expected theme css vars in payload:\n%s", output)
	}
}
