// Package render draws a layout.Layout (and, optionally, a routed path) to
// SVG for visual inspection outside the editor: room outline, every object
// colored by type, exit markers, and a legend.
package render
