// Package validation evaluates a whole layout.Layout against the placement,
// spacing, and reachability rules a single can_place check can't see on its
// own: out-of-bounds objects, collisions, per-type minimum distances,
// clutter, and whether the room's interior can still reach an exit. Validate
// accumulates every problem it finds rather than stopping at the first.
package validation
