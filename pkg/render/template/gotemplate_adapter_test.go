package template_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-featuregrid/pkg/render/template/gotemplate"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

var engineTemplates = fstest.MapFS{
	"hello.tpl":      {Data: []byte(`Hello {{ name }}!`)},
	"use-global.tpl": {Data: []byte(`env={{ settings.env }}`)},
	"use-filter.tpl": {Data: []byte(`{{ name|shout }}`)},
	"classes.tpl":    {Data: []byte(`<div class="{{ classes|classlist:"row" }}">{{ body|trim }}</div>`)},
	"blocks.tpl":     {Data: []byte(`{% for block in blocks %}[{{ block.title }}]{% endfor %}`)},
	"site.tpl":       {Data: []byte(`{{ site.name }}: {{ page }}`)},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureOutput(t, func(w *bytes.Buffer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada!" {
		t.Fatalf("render template mismatch result: %q", result)
	}
	if written != result {
		t.Fatalf("render template mismatch writer: %q", written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("render template mismatch: %q", result)
	}
}

func TestGoTemplateEngine_WithGlobals(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(engineTemplates),
		gotemplate.WithGlobals(map[string]any{"site": map[string]any{"name": "Docs"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	result, err := engine.RenderTemplate("site", map[string]any{"page": "Home"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "Docs: Home" {
		t.Fatalf("globals mismatch: %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("render template mismatch: %q", result)
	}
	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestGoTemplateEngine_DefaultFilters(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("classes", map[string]any{
		"classes": " col  col--4 col ",
		"body":    "  padded  ",
	})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	want := `<div class="col col--4 row">padded</div>`
	if result != want {
		t.Fatalf("default filters mismatch\nwant: %s\n got: %s", want, result)
	}
}

type blockView struct {
	Title string `json:"title"`
}

func TestGoTemplateEngine_ConvertsStructs(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("blocks", map[string]any{
		"blocks": []blockView{{Title: "One"}, {Title: "Two"}},
	})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "[One][Two]" {
		t.Fatalf("struct conversion mismatch: %q", result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Render(`{{ a }}-{{ b }}`, map[string]any{"a": "1", "b": "x"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "1-x" {
		t.Fatalf("render string mismatch: %q", result)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(engineTemplates))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
