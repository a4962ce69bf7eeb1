package icons

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

var (
	// ErrIconNotFound is returned when a reference does not match a file.
	ErrIconNotFound = errors.New("icons: icon not found")

	// ErrIconEmpty is returned when an icon has no content left after
	// sanitising.
	ErrIconEmpty = errors.New("icons: icon is empty after sanitising")
)

// Markup is sanitised SVG markup that can be emitted without escaping.
type Markup string

// String returns the raw markup.
func (m Markup) String() string {
	return string(m)
}

// Resolver maps an icon reference to renderable markup.
type Resolver interface {
	Resolve(ctx context.Context, ref feature.IconRef) (Markup, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, ref feature.IconRef) (Markup, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, ref feature.IconRef) (Markup, error) {
	return f(ctx, ref)
}

// FSResolver resolves references to SVG files inside an fs.FS.
type FSResolver struct {
	fsys fs.FS

	mu    sync.RWMutex
	cache map[string]Markup
}

var _ Resolver = (*FSResolver)(nil)

// NewFSResolver returns a resolver reading icons from fsys. A nil fsys uses
// the embedded bundle.
func NewFSResolver(fsys fs.FS) *FSResolver {
	if fsys == nil {
		fsys = EmbeddedFS()
	}
	return &FSResolver{
		fsys:  fsys,
		cache: make(map[string]Markup),
	}
}

// Resolve returns the sanitised SVG for ref.
func (r *FSResolver) Resolve(ctx context.Context, ref feature.IconRef) (Markup, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := cleanRef(ref)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrIconNotFound, ref)
	}

	r.mu.RLock()
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrIconNotFound, ref)
		}
		return "", fmt.Errorf("icons: read %q: %w", ref, err)
	}

	cleaned := Sanitize(string(data))
	if !strings.HasPrefix(cleaned, "<svg") {
		return "", fmt.Errorf("%w: %q", ErrIconEmpty, ref)
	}

	markup := Markup(cleaned)
	r.mu.Lock()
	r.cache[name] = markup
	r.mu.Unlock()
	return markup, nil
}

// FS exposes the underlying filesystem, for serving icons over HTTP.
func (r *FSResolver) FS() fs.FS {
	return r.fsys
}

func cleanRef(ref feature.IconRef) string {
	name := strings.TrimSpace(string(ref))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return ""
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return ""
	}
	return name
}

var svgOpenTag = regexp.MustCompile(`^<svg\b[^>]*>`)
var svgPresentationAttr = regexp.MustCompile(`\s(?:class|role)="[^"]*"`)

// Decorate replaces the class and role attributes on the root <svg> element
// of m. Empty values remove the attribute.
func Decorate(m Markup, class, role string) Markup {
	s := string(m)
	loc := svgOpenTag.FindStringIndex(s)
	if loc == nil {
		return m
	}
	open := svgPresentationAttr.ReplaceAllString(s[:loc[1]], "")
	var extra strings.Builder
	if class = strings.TrimSpace(class); class != "" {
		extra.WriteString(` class="` + html.EscapeString(class) + `"`)
	}
	if role = strings.TrimSpace(role); role != "" {
		extra.WriteString(` role="` + html.EscapeString(role) + `"`)
	}
	open = "<svg" + extra.String() + strings.TrimPrefix(open, "<svg")
	return Markup(open + s[loc[1]:])
}

// URLResolver turns references into URLs for <img>-style rendering.
type URLResolver struct {
	// Prefix is joined with the reference, e.g. "/icons".
	Prefix string
}

// URL returns the public URL for ref.
func (u URLResolver) URL(ref feature.IconRef) string {
	name := cleanRef(ref)
	if name == "" {
		return ""
	}
	prefix := strings.TrimRight(strings.TrimSpace(u.Prefix), "/")
	if prefix == "" {
		return "/" + name
	}
	return prefix + "/" + name
}
