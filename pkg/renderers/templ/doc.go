// Package templ renders feature grids through a-h/templ components. Output
// matches the vanilla renderer byte for byte, quotes included; Page wraps a section in a
// standalone document for the preview server.
package templ
