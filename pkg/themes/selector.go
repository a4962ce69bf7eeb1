package themes

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned when no manifest has the requested name.
	ErrThemeNotFound = errors.New("themes: theme not found")

	// ErrVariantNotFound is returned when the manifest has no such variant.
	ErrVariantNotFound = errors.New("themes: variant not found")
)

// Selector picks manifests by name and variant, falling back to configured
// defaults for empty arguments.
type Selector struct {
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector indexes manifests by name. Duplicate or unnamed manifests are
// rejected. An empty defaultTheme means the first manifest.
func NewSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*Selector, error) {
	s := &Selector{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, errors.New("themes: manifest name is required")
		}
		if _, exists := s.manifests[name]; exists {
			return nil, fmt.Errorf("themes: duplicate manifest %q", name)
		}
		s.manifests[name] = manifest
		if s.defaultTheme == "" {
			s.defaultTheme = name
		}
	}
	return s, nil
}

// Select returns the selection for name and variant.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = s.defaultTheme
		if variant == "" {
			variant = s.defaultVariant
		}
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q in theme %q", ErrVariantNotFound, variant, name)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
