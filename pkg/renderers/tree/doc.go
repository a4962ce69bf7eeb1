// Package tree renders feature grids as JSON for client-side hydration. The
// payload carries the generic node tree plus the resolved theme context so a
// client can apply the same classes and CSS variables as the HTML renderers.
package tree
