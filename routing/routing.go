package routing

import (
	"sort"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
)

// maxRepairRadius bounds the nearest-free-cell search used to recover a
// start or goal point that lands on a blocked cell (spec §4.5 step 3).
const maxRepairRadius = 12

// DefaultCellSize picks a routing cell size for a layout when the caller has
// no opinion: the layout's own grid size, capped at 12 so a coarse editor
// grid never produces an unusably blocky occupancy map.
func DefaultCellSize(l *layout.Layout) float64 {
	if l.GridSize > 0 && l.GridSize < 12 {
		return l.GridSize
	}
	return 12
}

// nearestFreeCell returns the closest free cell to c, searching outward in
// expanding rings up to maxRepairRadius. Ties are broken by Chebyshev ring
// order first, then row then column, so the search is deterministic. Returns
// ok=false if no free cell is found within range.
func nearestFreeCell(grid *Grid, c Cell) (Cell, bool) {
	if grid.getCell(c.Row, c.Col) == 0 {
		return c, true
	}

	for radius := 1; radius <= maxRepairRadius; radius++ {
		var candidates []Cell
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if absInt(dr) != radius && absInt(dc) != radius {
					continue // interior of the ring, already checked at a smaller radius
				}
				candidates = append(candidates, Cell{c.Row + dr, c.Col + dc})
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].Row != candidates[j].Row {
				return candidates[i].Row < candidates[j].Row
			}
			return candidates[i].Col < candidates[j].Col
		})
		for _, cand := range candidates {
			if grid.getCell(cand.Row, cand.Col) == 0 {
				return cand, true
			}
		}
	}

	return Cell{}, false
}

// FindShortestPathToExit finds the shortest walkable route from start to the
// nearest reachable exit point of l (spec §4.5). cellSize <= 0 adopts
// DefaultCellSize(l). Returns the path as a polyline of world-space points
// (cell centers from the start cell, or the nearest free cell to it, followed
// by the exact exit point) and true, or nil and false if start, every
// exit, or both are unreachable within the repair radius, or no exit is
// reachable by pathfinding.
func FindShortestPathToExit(l *layout.Layout, start geometry.Point, cellSize float64) ([]geometry.Point, bool) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize(l)
	}
	if len(l.ExitPoints) == 0 {
		return nil, false
	}

	grid := BuildOccupancyGrid(l, cellSize)
	room := l.RoomRect()

	toCell := func(p geometry.Point) Cell {
		row, col := geometry.WorldToCell(p.X-room.Left(), p.Y-room.Top(), cellSize)
		return Cell{Row: row, Col: col}
	}
	toWorld := func(c Cell) geometry.Point {
		local := geometry.CellCenter(c.Row, c.Col, cellSize)
		return geometry.Point{X: local.X + room.Left(), Y: local.Y + room.Top()}
	}

	startCell, ok := nearestFreeCell(grid, toCell(start))
	if !ok {
		return nil, false
	}

	var bestPath []Cell
	var bestExit geometry.Point
	found := false

	for _, exit := range l.ExitPoints {
		goalCell, ok := nearestFreeCell(grid, toCell(exit))
		if !ok {
			continue
		}

		path := astarPath(grid, startCell, goalCell)
		if path == nil {
			continue
		}

		if !found || len(path) < len(bestPath) {
			bestPath = path
			bestExit = exit
			found = true
		}
	}

	if !found {
		return nil, false
	}

	points := make([]geometry.Point, 0, len(bestPath)+1)
	for _, c := range bestPath {
		points = append(points, toWorld(c))
	}

	const exitTolerance = 1e-6
	last := points[len(points)-1]
	if geometry.DistancePointToRect(bestExit, geometry.Rect{X: last.X, Y: last.Y}) > exitTolerance {
		points = append(points, bestExit)
	}

	return points, true
}
