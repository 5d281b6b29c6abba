// Package placement makes local placement decisions against a layout.Layout:
// can a candidate rectangle be placed, and can an existing object be moved
// to a new position. It enforces room containment, pairwise non-overlap,
// and a single layout-wide minimum clearance; per-type distance rules are
// the validation package's responsibility.
package placement
