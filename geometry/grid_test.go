package geometry

import "testing"

func TestWorldToCell(t *testing.T) {
	row, col := WorldToCell(45, 85, 40)
	if row != 2 || col != 1 {
		t.Fatalf("got row=%d col=%d, want row=2 col=1", row, col)
	}
}

func TestCellCenter(t *testing.T) {
	p := CellCenter(1, 2, 40)
	if p.X != 100 || p.Y != 60 {
		t.Fatalf("got %+v, want {100 60}", p)
	}
}

func TestRectToCellsAlignedRectDoesNotSpill(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 40, Height: 40}
	cells := RectToCells(r, 40, 10, 10)
	if len(cells) != 1 || cells[0] != [2]int{0, 0} {
		t.Fatalf("expected exactly cell (0,0), got %v", cells)
	}
}

func TestRectToCellsSpansMultipleCells(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 90, Height: 90}
	cells := RectToCells(r, 40, 10, 10)
	// Covers rows/cols 0..2 inclusive (5 to 95 spans three 40-wide cells).
	if len(cells) != 9 {
		t.Fatalf("expected 9 cells, got %d: %v", len(cells), cells)
	}
}

func TestRectToCellsClampsToBounds(t *testing.T) {
	r := Rect{X: -50, Y: -50, Width: 20, Height: 20}
	cells := RectToCells(r, 40, 3, 3)
	for _, c := range cells {
		if c[0] < 0 || c[0] >= 3 || c[1] < 0 || c[1] >= 3 {
			t.Fatalf("cell %v out of bounds", c)
		}
	}
}
