package icons

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// Sanitize runs raw SVG markup through the icon allow-list. Scripts, event
// handlers, foreign objects and external references other than <use> hrefs
// are dropped.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return svgCase.Replace(strings.TrimSpace(svgSanitizer().Sanitize(trimmed)))
}

// svgCase restores the mixed-case SVG names bluemonday lowercases. Served as
// image/svg+xml the markup is parsed as XML, where names are case-sensitive.
// Text content cannot match: the sanitiser escapes '<' and '"' in it.
var svgCase = strings.NewReplacer(
	` viewbox="`, ` viewBox="`,
	` gradientunits="`, ` gradientUnits="`,
	` clippathunits="`, ` clipPathUnits="`,
	`<clippath`, `<clipPath`,
	`</clippath>`, `</clipPath>`,
	`<lineargradient`, `<linearGradient`,
	`</lineargradient>`, `</linearGradient>`,
	`<radialgradient`, `<radialGradient`,
	`</radialgradient>`, `</radialGradient>`,
)

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
			"linearGradient", "radialGradient", "stop",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class", "opacity",
				"fill-rule", "clip-rule", "transform",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs", "g")
		policy.AllowAttrs("transform", "fill", "stroke", "class").OnElements("g")
		policy.AllowAttrs("id", "x1", "y1", "x2", "y2", "cx", "cy", "r", "gradientUnits").
			OnElements("linearGradient", "radialGradient")
		policy.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")

		svgPolicy = policy
	})
	return svgPolicy
}
