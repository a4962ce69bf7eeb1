// Package grid implements the feature renderer: a pure mapping from a
// feature.List to the visual tree of the homepage features section.
//
// The tree has a fixed shape:
//
//	section.features
//	  div.container
//	    div.row
//	      div.col.col--4            (one per record, in list order)
//	        div.text--center
//	          svg.featureSvg[role=img]
//	        div.text--center.padding-horiz--md
//	          h3 (title)
//	          p  (description)
//
// Class names are symbolic and resolved by an external stylesheet; they can be
// overridden through WithClasses. Build never fails and has no side effects:
// two calls with the same list return equal values.
package grid
