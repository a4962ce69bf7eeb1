package templ

import (
	"context"
	"io"
	"strings"

	gotempl "github.com/a-h/templ"

	"github.com/goliatone/go-featuregrid/pkg/render"
)

// Section renders the outer section, container and row around one Feature
// component per block.
func Section(view render.View) gotempl.Component {
	return gotempl.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sw stickyWriter
		sw.w = w
		if view.Styles != "" {
			sw.raw(view.Styles)
			sw.raw("\n")
		}
		sw.raw(`<section class="`)
		sw.text(view.SectionClass)
		sw.raw("\">\n  <div class=\"")
		sw.text(view.ContainerClass)
		sw.raw("\">\n    <div class=\"")
		sw.text(view.RowClass)
		sw.raw("\">\n")
		if sw.err != nil {
			return sw.err
		}
		for _, block := range view.Blocks {
			if err := Feature(block).Render(ctx, w); err != nil {
				return err
			}
		}
		sw.raw("    </div>\n  </div>\n</section>\n")
		return sw.err
	})
}

// Feature renders one feature column.
func Feature(block render.BlockView) gotempl.Component {
	return gotempl.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var sw stickyWriter
		sw.w = w
		sw.raw(`      <div class="`)
		sw.text(block.Class)
		sw.raw(`" data-key="`)
		sw.text(block.Key)
		sw.raw("\">\n        <div class=\"")
		sw.text(block.IconWrapperClass)
		sw.raw("\">\n          ")
		sw.raw(block.Icon)
		sw.raw("\n        </div>\n        <div class=\"")
		sw.text(block.BodyClass)
		sw.raw("\">\n          <")
		sw.text(block.HeadingTag)
		if block.HeadingID != "" {
			sw.raw(` id="`)
			sw.text(block.HeadingID)
			sw.raw(`"`)
		}
		sw.raw(">")
		sw.text(block.Title)
		sw.raw("</")
		sw.text(block.HeadingTag)
		sw.raw(">\n          <p>")
		sw.raw(block.Description)
		sw.raw("</p>\n        </div>\n      </div>\n")
		return sw.err
	})
}

// PageOptions configures the standalone document produced by Page.
type PageOptions struct {
	Title         string
	Lang          string
	StylesheetURL string
}

// Page wraps body in a minimal HTML document.
func Page(options PageOptions, body gotempl.Component) gotempl.Component {
	return gotempl.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(options.Lang)
		if lang == "" {
			lang = "en"
		}
		var sw stickyWriter
		sw.w = w
		sw.raw("<!DOCTYPE html>\n<html lang=\"")
		sw.text(lang)
		sw.raw("\">\n<head>\n<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>")
		sw.text(options.Title)
		sw.raw("</title>\n")
		if options.StylesheetURL != "" {
			sw.raw(`<link rel="stylesheet" href="`)
			sw.text(options.StylesheetURL)
			sw.raw("\">\n")
		}
		sw.raw("</head>\n<body>\n<main>\n")
		if sw.err != nil {
			return sw.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		sw.raw("</main>\n</body>\n</html>\n")
		return sw.err
	})
}

// stickyWriter keeps the first write error and turns later writes into
// no-ops.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) raw(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

// textEscaper uses the entity table of the pongo2 escape filter, so both HTML
// renderers write the same bytes for quotes.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func (s *stickyWriter) text(v string) {
	s.raw(textEscaper.Replace(v))
}
