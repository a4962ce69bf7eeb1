package featuregrid

import (
	"io/fs"

	"github.com/goliatone/go-featuregrid/pkg/icons"
	vanilla "github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the embedded stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(featuregrid.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// IconsFS exposes the raw embedded feature icons.
func IconsFS() fs.FS {
	return icons.EmbeddedFS()
}
