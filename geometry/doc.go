// Package geometry provides the axis-aligned rectangle primitives shared by
// the placement, validation, and routing engines: normalization, overlap and
// distance tests, grid snapping, and rasterization of rectangles into grid
// cells.
package geometry
