package icons

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.svg
var embeddedIcons embed.FS

// EmbeddedFS returns the bundled icons used by the reference feature list.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedIcons, "assets")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
