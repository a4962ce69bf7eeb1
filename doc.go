// Package featuregrid renders the homepage features section: an ordered list
// of feature records laid out as a row of equal columns, each with an icon, a
// title heading and a description.
//
// Quick start:
//
//	html, err := featuregrid.GenerateHTML(ctx, "vanilla")
//
// HomepageFeatures returns the same section as a plain value tree for callers
// that bring their own renderer.
package featuregrid
