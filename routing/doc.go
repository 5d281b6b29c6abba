// Package routing rasterizes a layout.Layout into an occupancy grid and
// finds the shortest walkable path from a point to the nearest reachable
// exit. Obstacles are inflated slightly so thin walls are reliably captured
// by the grid; doors carve an anisotropic opening through the wall they sit
// in; exit cells are cleared in their 8-neighbourhood so rounding never
// blocks a goal.
package routing
