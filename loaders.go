package featuregrid

import (
	"io/fs"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

// LoadFeatures reads a feature document (JSON or YAML) from fsys.
func LoadFeatures(fsys fs.FS, path string) (feature.List, error) {
	return feature.LoadFS(fsys, path)
}

// LoadThemes reads every theme manifest in fsys and returns a selector over
// them.
func LoadThemes(fsys fs.FS, defaultTheme, defaultVariant string) (*themes.Selector, error) {
	manifests, err := themes.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return themes.NewSelector(defaultTheme, defaultVariant, manifests...)
}
