// Package app assembles an orchestrator from the FEATUREGRID_* configuration
// for the commands.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-featuregrid/internal/platform/config"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/icons"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
	templrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/templ"
	"github.com/goliatone/go-featuregrid/pkg/renderers/tree"
	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
	"github.com/goliatone/go-featuregrid/pkg/themes"
)

// Components are the pieces built from configuration.
type Components struct {
	Orchestrator *orchestrator.Orchestrator
	Icons        icons.Resolver
	Records      feature.List
}

// Build loads records, themes, icons and templates named by cfg and wires
// them into an orchestrator.
func Build(cfg config.Config, logger *slog.Logger) (Components, error) {
	records := feature.Reference()
	if path := strings.TrimSpace(cfg.FeaturesFile); path != "" {
		loaded, err := feature.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return Components{}, err
		}
		records = loaded
	}

	resolver := icons.NewFSResolver(nil)
	if dir := strings.TrimSpace(cfg.IconsDir); dir != "" {
		resolver = icons.NewFSResolver(os.DirFS(dir))
	}

	vanillaOptions := []vanilla.Option{vanilla.WithIconResolver(resolver)}
	if dir := strings.TrimSpace(cfg.TemplatesDir); dir != "" {
		vanillaOptions = append(vanillaOptions, vanilla.WithTemplatesDir(dir))
	}
	html, err := vanilla.New(vanillaOptions...)
	if err != nil {
		return Components{}, err
	}
	registry := render.NewRegistry(
		html,
		templrenderer.New(templrenderer.WithIconResolver(resolver)),
		tree.New(),
	)

	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
		orchestrator.WithIconResolver(resolver),
		orchestrator.WithRecords(records),
		orchestrator.WithLogger(logger),
	}

	if dir := strings.TrimSpace(cfg.ThemesDir); dir != "" {
		manifests, err := themes.LoadFS(os.DirFS(dir))
		if err != nil {
			return Components{}, err
		}
		selector, err := themes.NewSelector(cfg.Theme, cfg.ThemeVariant, manifests...)
		if err != nil {
			return Components{}, err
		}
		options = append(options, orchestrator.WithThemeSelector(selector))
	}

	return Components{
		Orchestrator: orchestrator.New(options...),
		Icons:        resolver,
		Records:      records,
	}, nil
}

// IconMode parses the configured icon mode.
func IconMode(raw string) (render.IconMode, error) {
	switch mode := render.IconMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "", render.IconModeInline:
		return render.IconModeInline, nil
	case render.IconModeLink:
		return render.IconModeLink, nil
	default:
		return "", fmt.Errorf("app: unknown icon mode %q", raw)
	}
}
