// Package themes adapts go-theme manifests to the feature grid.
//
// A Selector picks a manifest and variant; RendererConfig flattens the
// selection into the theme.RendererConfig handed to renderers. Manifests
// customise the grid through three channels:
//
//   - templates keyed "featuregrid.section" replace the section template;
//   - templates keyed "featuregrid.class.<slot>" replace class names
//     (slots: section, container, row, item, icon_wrapper, icon, body);
//   - tokens become CSS custom properties ("brand" -> "--brand").
package themes
