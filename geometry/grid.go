package geometry

import "math"

// snapEpsilon keeps a rectangle edge exactly aligned with a cell boundary
// from spuriously covering the next cell over in RectToCells.
const snapEpsilon = 1e-9

// Snap rounds v to the nearest multiple of g. With g <= 0 it returns v
// unchanged.
func Snap(v, g float64) float64 {
	if g <= 0 {
		return v
	}
	return math.Round(v/g) * g
}

// WorldToCell converts a world-space point to a grid cell. g must be > 0.
func WorldToCell(x, y, g float64) (row, col int) {
	row = int(math.Floor(y / g))
	col = int(math.Floor(x / g))
	return row, col
}

// CellCenter returns the world-space center of the given grid cell.
func CellCenter(row, col int, g float64) Point {
	return Point{
		X: (float64(col) + 0.5) * g,
		Y: (float64(row) + 0.5) * g,
	}
}

// RectToCells enumerates every grid cell a normalized rectangle covers,
// clamped to [0, maxRows-1] x [0, maxCols-1]. The upper bound on each axis is
// computed from (extent - epsilon) so a rectangle exactly aligned with a
// cell edge does not spill into the next cell.
func RectToCells(r Rect, g float64, maxRows, maxCols int) [][2]int {
	rr := r.Normalize()

	startRow := int(math.Floor(rr.Top() / g))
	endRow := int(math.Floor((rr.Bottom() - snapEpsilon) / g))
	startCol := int(math.Floor(rr.Left() / g))
	endCol := int(math.Floor((rr.Right() - snapEpsilon) / g))

	startRow = clampInt(startRow, 0, maxRows-1)
	endRow = clampInt(endRow, 0, maxRows-1)
	startCol = clampInt(startCol, 0, maxCols-1)
	endCol = clampInt(endCol, 0, maxCols-1)

	cells := make([][2]int, 0, (endRow-startRow+1)*(endCol-startCol+1))
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			cells = append(cells, [2]int{row, col})
		}
	}
	return cells
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
