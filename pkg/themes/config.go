package themes

import (
	"maps"
	"path"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-featuregrid/pkg/grid"
)

const (
	// PartialSection names the template that renders the whole section.
	PartialSection = "featuregrid.section"

	// PartialFeature names the template that renders one feature block.
	PartialFeature = "featuregrid.feature"

	// ClassPartialPrefix prefixes class overrides, e.g.
	// "featuregrid.class.item".
	ClassPartialPrefix = "featuregrid.class."

	// AssetStylesheet is the asset key of the grid stylesheet.
	AssetStylesheet = "featuregrid.stylesheet"

	// DefaultSectionTemplate is the embedded section template path.
	DefaultSectionTemplate = "templates/section.tmpl"

	// DefaultFeatureTemplate is the embedded feature block template path.
	DefaultFeatureTemplate = "templates/feature.tmpl"
)

// DefaultFallbacks returns the partials used when a manifest does not
// provide them.
func DefaultFallbacks() map[string]string {
	return map[string]string{
		PartialSection: DefaultSectionTemplate,
		PartialFeature: DefaultFeatureTemplate,
	}
}

// RendererConfig flattens a selection into the renderer configuration:
// fallbacks merged with base then variant templates, base tokens overridden by
// variant tokens, CSS variables derived from tokens, and an asset resolver
// over the merged asset files.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string),
		Tokens:   make(map[string]string),
	}
	maps.Copy(cfg.Partials, fallbacks)

	prefix := ""
	files := make(map[string]string)
	if manifest := selection.Manifest; manifest != nil {
		maps.Copy(cfg.Partials, manifest.Templates)
		maps.Copy(cfg.Tokens, manifest.Tokens)
		maps.Copy(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			maps.Copy(cfg.Partials, variant.Templates)
			maps.Copy(cfg.Tokens, variant.Tokens)
			maps.Copy(files, variant.Assets.Files)
			if strings.TrimSpace(variant.Assets.Prefix) != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cfg.CSSVars = CSSVars(cfg.Tokens)
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

// Partial returns the partial registered under key, or fallback.
func Partial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if value := strings.TrimSpace(cfg.Partials[key]); value != "" {
		return value
	}
	return fallback
}

// Classes extracts the class overrides declared as
// "featuregrid.class.<slot>" partials.
func Classes(cfg *theme.RendererConfig) grid.Classes {
	if cfg == nil || len(cfg.Partials) == 0 {
		return grid.Classes{}
	}
	slots := make(map[string]string)
	for key, value := range cfg.Partials {
		slot, ok := strings.CutPrefix(key, ClassPartialPrefix)
		if !ok {
			continue
		}
		slots[slot] = value
	}
	return grid.ClassesFromSlots(slots)
}

// CSSVars maps every token to a custom property name ("brand" -> "--brand").
// Tokens already starting with "--" keep their name.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	return vars
}

// CSSVarsStyle renders vars as a :root rule with keys sorted, or "" when
// there are none.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(vars))

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(sanitizeCSSValue(vars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// sanitizeCSSValue drops characters that could close the declaration or the
// enclosing <style> element.
func sanitizeCSSValue(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>':
			return -1
		}
		return r
	}, strings.TrimSpace(value))
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || strings.TrimSpace(file) == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		if prefix == "" {
			return "/" + path.Clean(file)
		}
		return prefix + "/" + path.Clean(file)
	}
}
