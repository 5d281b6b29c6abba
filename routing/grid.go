package routing

import (
	"math"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
)

// Cell identifies one square of a Grid by (row, col).
type Cell struct {
	Row, Col int
}

// Grid is a rasterized occupancy map over a layout's room. A cell value of 0
// is free, 1 is blocked.
type Grid struct {
	Cells    [][]int
	Rows     int
	Cols     int
	CellSize float64
	Origin   geometry.Rect // the room rect the grid was built against
}

// getCell returns the value at (row, col), or 1 (blocked) if out of bounds.
func (g *Grid) getCell(row, col int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 1
	}
	return g.Cells[row][col]
}

// setCell sets the value at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) setCell(row, col, value int) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return
	}
	g.Cells[row][col] = value
}

// fillRect marks every cell a local-space rectangle covers with value.
func (g *Grid) fillRect(local geometry.Rect, value int) {
	for _, rc := range geometry.RectToCells(local, g.CellSize, g.Rows, g.Cols) {
		g.setCell(rc[0], rc[1], value)
	}
}

// obstacleInflate is the margin obstacles are grown by before rasterization
// so thin walls are reliably caught by the grid (spec §4.5 step 2).
func obstacleInflate(cellSize float64) float64 {
	return math.Max(0.25*cellSize, 3.0)
}

// BuildOccupancyGrid rasterizes l into an occupancy grid at the given cell
// size (spec §4.5). Doors do not obstruct in the first pass and instead
// carve an opening in the second pass; exit points are cleared last so
// rounding never blocks a goal cell.
func BuildOccupancyGrid(l *layout.Layout, cellSize float64) *Grid {
	room := l.RoomRect()
	cols := int(math.Max(1, math.Ceil(l.RoomWidth/cellSize)))
	rows := int(math.Max(1, math.Ceil(l.RoomHeight/cellSize)))

	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, cols)
	}

	grid := &Grid{Cells: cells, Rows: rows, Cols: cols, CellSize: cellSize, Origin: room}

	toLocal := func(r geometry.Rect) geometry.Rect {
		rr := r.Normalize()
		return geometry.Rect{X: rr.X - room.Left(), Y: rr.Y - room.Top(), Width: rr.Width, Height: rr.Height}
	}

	inflate := obstacleInflate(cellSize)

	// Pass 1: mark obstacles (skip doors and walkable types).
	for _, obj := range l.AllObjects() {
		if obj.Type == layout.Door {
			continue
		}
		if layout.IsWalkable(obj.Type) {
			continue
		}
		local := geometry.Inflate(toLocal(layout.OccupiedRect(obj)), inflate)
		grid.fillRect(local, 1)
	}

	// Pass 2: open doors with an anisotropic carve (more across the wall's
	// thickness, less along it).
	doorAcross := math.Max(inflate+0.15*cellSize, 0.5)
	doorAlong := math.Max(0.05*cellSize, 0.5)

	for _, obj := range l.AllObjects() {
		if obj.Type != layout.Door {
			continue
		}
		dr := toLocal(layout.OccupiedRect(obj))

		var opened geometry.Rect
		if dr.Height >= dr.Width {
			// Vertical door.
			opened = geometry.Rect{
				X:      dr.X - doorAcross,
				Y:      dr.Y - doorAlong,
				Width:  dr.Width + 2*doorAcross,
				Height: dr.Height + 2*doorAlong,
			}
		} else {
			opened = geometry.Rect{
				X:      dr.X - doorAlong,
				Y:      dr.Y - doorAcross,
				Width:  dr.Width + 2*doorAlong,
				Height: dr.Height + 2*doorAcross,
			}
		}
		grid.fillRect(opened, 0)
	}

	// Pass 3: clear exit cells and their 8-neighbourhood.
	for _, exit := range l.ExitPoints {
		row, col := geometry.WorldToCell(exit.X-room.Left(), exit.Y-room.Top(), cellSize)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				grid.setCell(row+dr, col+dc, 0)
			}
		}
	}

	return grid
}
