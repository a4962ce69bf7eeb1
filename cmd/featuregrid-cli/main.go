package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-featuregrid/internal/app"
	"github.com/goliatone/go-featuregrid/internal/platform/config"
	"github.com/goliatone/go-featuregrid/internal/platform/logging"
	"github.com/goliatone/go-featuregrid/internal/platform/otel"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("featuregrid-cli: %v", err)
	}

	renderer := flag.String("renderer", cfg.Renderer, "renderer to use (vanilla, templ, tree)")
	output := flag.String("output", "", "output file (stdout if empty)")
	features := flag.String("features", cfg.FeaturesFile, "features document (JSON or YAML); reference list if empty")
	themesDir := flag.String("themes", cfg.ThemesDir, "directory of theme manifests")
	themeName := flag.String("theme", cfg.Theme, "theme to select")
	variant := flag.String("variant", cfg.ThemeVariant, "theme variant to select")
	iconsDir := flag.String("icons", cfg.IconsDir, "directory of SVG icons; embedded icons if empty")
	templatesDir := flag.String("templates", cfg.TemplatesDir, "directory overriding the vanilla templates")
	iconMode := flag.String("icon-mode", cfg.IconMode, "icon mode (inline, link)")
	iconPrefix := flag.String("icon-prefix", "", "URL prefix for linked icons")
	styles := flag.Bool("styles", false, "emit the stylesheet link and theme variables")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Parse()

	cfg.Renderer = *renderer
	cfg.FeaturesFile = *features
	cfg.ThemesDir = *themesDir
	cfg.Theme = *themeName
	cfg.ThemeVariant = *variant
	cfg.IconsDir = *iconsDir
	cfg.TemplatesDir = *templatesDir
	if *verbose {
		cfg.LogLevel = "debug"
	}

	mode, err := app.IconMode(*iconMode)
	if err != nil {
		log.Fatalf("Invalid icon mode: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	components, err := app.Build(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load inputs: %v", err)
	}

	ctx := logging.WithLogger(context.Background(), logger)
	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing("featuregrid-cli"))
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	req := orchestrator.Request{
		Renderer:     cfg.Renderer,
		ThemeName:    cfg.Theme,
		ThemeVariant: cfg.ThemeVariant,
		RenderOptions: render.RenderOptions{
			IconMode:      mode,
			IconURLPrefix: *iconPrefix,
			IncludeStyles: *styles,
		},
	}

	out, err := components.Orchestrator.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render features: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Features written to %s\n", *output)
	} else {
		fmt.Print(string(out))
	}
}
