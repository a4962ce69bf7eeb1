package render

import (
	"context"

	"github.com/goliatone/go-featuregrid/pkg/grid"
)

// Renderer converts a feature grid into a byte representation (HTML, JSON,
// etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, g grid.Grid, options RenderOptions) ([]byte, error)
}
