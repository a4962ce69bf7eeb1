// Package config holds the environment-driven settings shared by the
// featuregrid commands.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goliatone/go-featuregrid/internal/platform/otel"
)

// Config is the FEATUREGRID_* environment. Command-line flags override the
// matching fields.
type Config struct {
	Addr            string        `env:"FEATUREGRID_ADDR" envDefault:":8080"`
	Renderer        string        `env:"FEATUREGRID_RENDERER" envDefault:"vanilla"`
	FeaturesFile    string        `env:"FEATUREGRID_FEATURES"`
	ThemesDir       string        `env:"FEATUREGRID_THEMES_DIR"`
	Theme           string        `env:"FEATUREGRID_THEME"`
	ThemeVariant    string        `env:"FEATUREGRID_THEME_VARIANT"`
	IconsDir        string        `env:"FEATUREGRID_ICONS_DIR"`
	IconMode        string        `env:"FEATUREGRID_ICON_MODE" envDefault:"inline"`
	TemplatesDir    string        `env:"FEATUREGRID_TEMPLATES_DIR"`
	LogLevel        string        `env:"FEATUREGRID_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"FEATUREGRID_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	OTelEndpoint    string        `env:"FEATUREGRID_OTEL_ENDPOINT"`
	OTelEnabled     bool          `env:"FEATUREGRID_OTEL_ENABLED" envDefault:"true"`
	OTelSampleRatio float64       `env:"FEATUREGRID_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Tracing returns the tracer provider settings for serviceName.
func (c Config) Tracing(serviceName string) otel.Settings {
	return otel.Settings{
		ServiceName: serviceName,
		Endpoint:    c.OTelEndpoint,
		Enabled:     c.OTelEnabled,
		SampleRatio: c.OTelSampleRatio,
	}
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
