package themes

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name      string                 `json:"name" yaml:"name"`
	Version   string                 `json:"version" yaml:"version"`
	Tokens    map[string]string      `json:"tokens" yaml:"tokens"`
	Templates map[string]string      `json:"templates" yaml:"templates"`
	Assets    assetsFile             `json:"assets" yaml:"assets"`
	Variants  map[string]variantFile `json:"variants" yaml:"variants"`
}

type variantFile struct {
	Tokens    map[string]string `json:"tokens" yaml:"tokens"`
	Templates map[string]string `json:"templates" yaml:"templates"`
	Assets    assetsFile        `json:"assets" yaml:"assets"`
}

type assetsFile struct {
	Prefix string            `json:"prefix" yaml:"prefix"`
	Files  map[string]string `json:"files" yaml:"files"`
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file as a theme
// manifest. A nil fsys yields no manifests.
func LoadFS(fsys fs.FS) ([]*theme.Manifest, error) {
	if fsys == nil {
		return nil, nil
	}
	var manifests []*theme.Manifest
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("themes: read %s: %w", path, err)
		}
		manifest, err := ParseManifest(data, path)
		if err != nil {
			return err
		}
		manifests = append(manifests, manifest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return manifests, nil
}

// ParseManifest decodes a JSON or YAML manifest document.
func ParseManifest(data []byte, source string) (*theme.Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("themes: manifest %s is empty", source)
	}
	var raw manifestFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = manifestFile{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("themes: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("themes: manifest %s has no name", source)
	}

	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(raw.Name),
		Version:   raw.Version,
		Tokens:    raw.Tokens,
		Templates: raw.Templates,
		Assets:    theme.Assets{Prefix: raw.Assets.Prefix, Files: raw.Assets.Files},
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
