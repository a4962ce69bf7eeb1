package render

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
)

// IconMarkup returns the HTML for a block icon. Inline mode resolves the SVG
// through resolver and stamps the block's class and role on it; link mode
// emits an <img> whose src comes from the theme asset resolver when it knows
// the reference, otherwise from IconURLPrefix.
func IconMarkup(ctx context.Context, resolver icons.Resolver, icon grid.Icon, options RenderOptions) (string, error) {
	if options.Mode() == IconModeLink {
		src := ""
		if options.Theme != nil && options.Theme.AssetURL != nil {
			src = options.Theme.AssetURL(string(icon.Ref))
		}
		if src == "" {
			src = icons.URLResolver{Prefix: options.IconURLPrefix}.URL(icon.Ref)
		}
		var b strings.Builder
		b.WriteString(`<img src="`)
		b.WriteString(html.EscapeString(src))
		b.WriteString(`"`)
		if icon.Class != "" {
			b.WriteString(` class="` + html.EscapeString(icon.Class) + `"`)
		}
		if icon.Role != "" {
			b.WriteString(` role="` + html.EscapeString(icon.Role) + `"`)
		}
		b.WriteString(` alt="">`)
		return b.String(), nil
	}

	if resolver == nil {
		return "", fmt.Errorf("render: icon resolver is required for inline icons")
	}
	markup, err := resolver.Resolve(ctx, icon.Ref)
	if err != nil {
		return "", fmt.Errorf("render: resolve icon: %w", err)
	}
	return icons.Decorate(markup, icon.Class, icon.Role).String(), nil
}

// StylesheetLink returns the <link> element for the stylesheet, preferring
// the theme asset resolver for key.
func StylesheetLink(options RenderOptions, key, fallback string) string {
	href := strings.TrimSpace(options.StylesheetURL)
	if href == "" && options.Theme != nil && options.Theme.AssetURL != nil {
		href = options.Theme.AssetURL(key)
	}
	if href == "" {
		href = fallback
	}
	if href == "" {
		return ""
	}
	return `<link rel="stylesheet" href="` + html.EscapeString(href) + `">`
}
