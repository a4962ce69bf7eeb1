package render

import (
	theme "github.com/goliatone/go-theme"
)

// IconMode controls how renderers emit feature icons.
type IconMode string

const (
	// IconModeInline inlines the sanitised SVG markup.
	IconModeInline IconMode = "inline"
	// IconModeLink emits an <img> pointing at the icon URL.
	IconModeLink IconMode = "link"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the grid.
type RenderOptions struct {
	// Theme carries the resolved go-theme configuration. Renderers use its
	// CSS variables and asset resolver; class overrides have already been
	// applied to the grid by the time a renderer sees it.
	Theme *theme.RendererConfig
	// IconMode selects inline SVG (default) or linked images.
	IconMode IconMode
	// IconURLPrefix is prepended to icon references in link mode.
	IconURLPrefix string
	// IncludeStyles asks HTML renderers to emit the stylesheet link and the
	// theme CSS variables ahead of the section.
	IncludeStyles bool
	// StylesheetURL overrides the stylesheet link emitted with
	// IncludeStyles.
	StylesheetURL string
}

// Mode returns the icon mode, defaulting to inline.
func (o RenderOptions) Mode() IconMode {
	if o.IconMode == IconModeLink {
		return IconModeLink
	}
	return IconModeInline
}
