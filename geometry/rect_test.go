package geometry

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestIntersectsSymmetric(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if Intersects(a, b) != Intersects(b, a) {
		t.Fatalf("Intersects must be symmetric")
	}
	if !Intersects(a, b) {
		t.Fatalf("expected overlapping rects to intersect")
	}
}

func TestIntersectsTouchingEdgesDoNotCount(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 10, Height: 10}
	if Intersects(a, b) {
		t.Fatalf("edge-touching rects must not intersect")
	}
}

func TestContainsClosedEdges(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	inner := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	if !Contains(outer, inner) {
		t.Fatalf("identical rects should be contained (closed comparison)")
	}
	if Contains(outer, Rect{X: -1, Y: 0, Width: 10, Height: 10}) {
		t.Fatalf("rect extending past the left edge must not be contained")
	}
}

func TestNormalizeFlipsNegativeExtents(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: -5, Height: -5}.Normalize()
	if r.X != 5 || r.Y != 5 || r.Width != 5 || r.Height != 5 {
		t.Fatalf("unexpected normalized rect: %+v", r)
	}
}

func TestDistanceRectToRectZeroWhenIntersecting(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if DistanceRectToRect(a, b) != 0 {
		t.Fatalf("expected zero distance for overlapping rects")
	}
}

func TestDistanceRectToRectSeparated(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 0, Width: 10, Height: 10}
	got := DistanceRectToRect(a, b)
	if math.Abs(got-10) > 1e-9 {
		t.Fatalf("expected gap of 10, got %v", got)
	}
}

func TestDistancePointToRectInsideIsZero(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if DistancePointToRect(Point{X: 5, Y: 5}, r) != 0 {
		t.Fatalf("point inside rect must have zero distance")
	}
}

func TestInflateGrowsEachSide(t *testing.T) {
	r := Inflate(Rect{X: 10, Y: 10, Width: 10, Height: 10}, 5)
	want := Rect{X: 5, Y: 5, Width: 20, Height: 20}
	if r != want {
		t.Fatalf("got %+v want %+v", r, want)
	}
}

func TestSnapNonPositiveGridIsNoop(t *testing.T) {
	if Snap(17.3, 0) != 17.3 {
		t.Fatalf("grid <= 0 must return v unchanged")
	}
	if Snap(17.3, -5) != 17.3 {
		t.Fatalf("grid <= 0 must return v unchanged")
	}
}

func TestSnapRoundsToNearestMultiple(t *testing.T) {
	if got := Snap(47, 40); got != 40 {
		t.Fatalf("got %v want 40", got)
	}
	if got := Snap(61, 40); got != 80 {
		t.Fatalf("got %v want 80", got)
	}
}

// TestIntersectsSymmetricProperty exercises the invariant from spec section
// 8.1 across random rectangle pairs.
func TestIntersectsSymmetricProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genRect(t, "a")
		b := genRect(t, "b")
		if Intersects(a, b) != Intersects(b, a) {
			t.Fatalf("Intersects(a,b)=%v != Intersects(b,a)=%v for a=%+v b=%+v",
				Intersects(a, b), Intersects(b, a), a, b)
		}
	})
}

func genRect(t *rapid.T, label string) Rect {
	return Rect{
		X:      rapid.Float64Range(-100, 100).Draw(t, label+"_x"),
		Y:      rapid.Float64Range(-100, 100).Draw(t, label+"_y"),
		Width:  rapid.Float64Range(1, 50).Draw(t, label+"_w"),
		Height: rapid.Float64Range(1, 50).Draw(t, label+"_h"),
	}
}
