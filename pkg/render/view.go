package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/grid"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

// DefaultStylesheetURL is linked when IncludeStyles is set and neither the
// options nor the theme name a stylesheet.
const DefaultStylesheetURL = "/assets/featuregrid.css"

// View is the flattened, string-only form of a grid that HTML renderers
// consume. Icon and Description hold trusted markup.
type View struct {
	Styles         string      `json:"styles"`
	SectionClass   string      `json:"sectionClass"`
	ContainerClass string      `json:"containerClass"`
	RowClass       string      `json:"rowClass"`
	Blocks         []BlockView `json:"blocks"`
}

// BlockView is one feature card inside a View.
type BlockView struct {
	Key              string `json:"key"`
	Class            string `json:"class"`
	IconWrapperClass string `json:"iconWrapperClass"`
	Icon             string `json:"icon"`
	BodyClass        string `json:"bodyClass"`
	HeadingTag       string `json:"headingTag"`
	HeadingID        string `json:"headingId"`
	Title            string `json:"title"`
	Description      string `json:"description"`
}

// BuildView resolves icons and styles for g. Block order is preserved; the
// first icon failure aborts the build.
func BuildView(ctx context.Context, resolver icons.Resolver, g grid.Grid, options RenderOptions) (View, error) {
	view := View{
		Styles:         Styles(options),
		SectionClass:   g.SectionClass,
		ContainerClass: g.ContainerClass,
		RowClass:       g.RowClass,
		Blocks:         make([]BlockView, 0, len(g.Blocks)),
	}
	for _, block := range g.Blocks {
		icon, err := IconMarkup(ctx, resolver, block.Icon, options)
		if err != nil {
			return View{}, fmt.Errorf("block %q: %w", block.Key, err)
		}
		view.Blocks = append(view.Blocks, BlockView{
			Key:              block.Key,
			Class:            block.Class,
			IconWrapperClass: block.IconWrapperClass,
			Icon:             icon,
			BodyClass:        block.BodyClass,
			HeadingTag:       block.Heading.Tag(),
			HeadingID:        block.Heading.ID,
			Title:            block.Heading.Text,
			Description:      block.Description.String(),
		})
	}
	return view, nil
}

// Styles returns the stylesheet link followed by the theme CSS variables, or
// "" when IncludeStyles is off.
func Styles(options RenderOptions) string {
	if !options.IncludeStyles {
		return ""
	}
	parts := make([]string, 0, 2)
	if link := StylesheetLink(options, themes.AssetStylesheet, DefaultStylesheetURL); link != "" {
		parts = append(parts, link)
	}
	if options.Theme != nil {
		if vars := themes.CSSVarsStyle(options.Theme.CSSVars); vars != "" {
			parts = append(parts, "<style>\n"+vars+"\n</style>")
		}
	}
	return strings.Join(parts, "\n")
}
