// Package icons resolves feature icon references to renderable markup.
//
// The FSResolver reads SVG files from an fs.FS, runs them through a strict
// SVG allow-list, and caches the sanitised result per reference. Icon
// failures (missing or empty files) are reported by the resolver; the grid
// builder never sees them. Renderers that prefer <img> tags can use
// URLResolver instead and skip inlining altogether.
package icons
