package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/internal/platform/config"
	"github.com/goliatone/go-featuregrid/internal/platform/logging"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestBuildDefaults(t *testing.T) {
	components, err := Build(config.Config{Renderer: "vanilla"}, logging.Discard())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"High Performance", "Developer Friendly", "Enterprise Ready"}, components.Records.Titles()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if got := components.Orchestrator.Registry().List(); !cmp.Equal(got, []string{"templ", "tree", "vanilla"}) {
		t.Fatalf("renderers: %v", got)
	}
	output, err := components.Orchestrator.Generate(context.Background(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `<svg class="featureSvg" role="img"`) {
		t.Fatalf("expected embedded icons inline:\n%s", output)
	}
}

func TestBuildFromDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "features.yaml"), `features:
  - title: Local
    icon: local.svg
    description: from disk
`)
	writeFile(t, filepath.Join(dir, "icons", "local.svg"), `<svg viewBox="0 0 1 1"><path d="M0 0"/></svg>`)
	writeFile(t, filepath.Join(dir, "themes", "docs.yaml"), `name: docs
version: 1.0.0
templates:
  featuregrid.class.item: col col--6
`)

	components, err := Build(config.Config{
		Renderer:     "templ",
		FeaturesFile: filepath.Join(dir, "features.yaml"),
		IconsDir:     filepath.Join(dir, "icons"),
		ThemesDir:    filepath.Join(dir, "themes"),
		Theme:        "docs",
	}, logging.Discard())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	output, err := components.Orchestrator.Generate(context.Background(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	for _, want := range []string{
		`<div class="col col--6" data-key="local">`,
		"<h3>Local</h3>",
		`d="M0 0"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestBuildMissingFeaturesFile(t *testing.T) {
	_, err := Build(config.Config{FeaturesFile: filepath.Join(t.TempDir(), "nope.yaml")}, logging.Discard())
	if err == nil {
		t.Fatalf("expected error for missing features file")
	}
}

func TestIconMode(t *testing.T) {
	cases := map[string]render.IconMode{
		"":       render.IconModeInline,
		"inline": render.IconModeInline,
		" LINK ": render.IconModeLink,
	}
	for raw, want := range cases {
		got, err := IconMode(raw)
		if err != nil || got != want {
			t.Fatalf("IconMode(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := IconMode("embed"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
