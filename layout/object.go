package layout

import "github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"

// Object is a single item placed in a Layout (spec §3.3).
type Object struct {
	ID       int
	Type     ObjectType
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	Metadata map[string]string
}

// OccupiedRect returns the rectangle o physically covers, applying the wall
// centerline convention (spec §3.3). For every type other than Wall, (X, Y)
// is the top-left corner. For Wall, thickness = min(Width, Height); a
// horizontal wall (Width >= Height) treats Y as the centerline Y, a vertical
// wall treats X as the centerline X. This is the only legal way to obtain an
// object's geometry — placement, validation, and routing must all go through
// it rather than reading X/Y/Width/Height directly.
func OccupiedRect(o *Object) geometry.Rect {
	if o.Type != Wall {
		return geometry.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}.Normalize()
	}

	thickness := o.Width
	if o.Height < thickness {
		thickness = o.Height
	}

	if o.Width >= o.Height {
		return geometry.Rect{X: o.X, Y: o.Y - thickness/2, Width: o.Width, Height: thickness}.Normalize()
	}
	return geometry.Rect{X: o.X - thickness/2, Y: o.Y, Width: thickness, Height: o.Height}.Normalize()
}

// OccupiedRectAt returns the rectangle o would occupy if its origin were
// (x, y) instead of its current X/Y, preserving its wall-centerline
// convention and current Width/Height. Placement uses this to build a
// candidate rectangle for a proposed move without mutating o.
func OccupiedRectAt(o *Object, x, y float64) geometry.Rect {
	moved := *o
	moved.X, moved.Y = x, y
	return OccupiedRect(&moved)
}
