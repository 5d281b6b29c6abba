package placement

import (
	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
)

// Reason explains the outcome of a placement decision (spec §7).
type Reason int

const (
	Ok Reason = iota
	OutOfBounds
	Collision
	TooClose
	NotFound
)

// String returns a human-readable name for r.
func (r Reason) String() string {
	switch r {
	case Ok:
		return "Ok"
	case OutOfBounds:
		return "OutOfBounds"
	case Collision:
		return "Collision"
	case TooClose:
		return "TooClose"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// CanPlace reports whether candidate may be placed into l (spec §4.3).
// ignoreID, when non-nil, excludes that object's ID from the pairwise
// checks (used by MoveObject to exclude the object being moved).
func CanPlace(l *layout.Layout, candidate geometry.Rect, ignoreID *int) (bool, Reason) {
	candidate = candidate.Normalize()

	if !geometry.Contains(l.RoomRect(), candidate) {
		return false, OutOfBounds
	}

	for _, other := range l.AllObjects() {
		if ignoreID != nil && other.ID == *ignoreID {
			continue
		}

		otherRect := layout.OccupiedRect(other)

		if geometry.Intersects(candidate, otherRect) {
			return false, Collision
		}

		if l.MinClearance > 0 {
			if geometry.DistanceRectToRect(candidate, otherRect) < l.MinClearance {
				return false, TooClose
			}
		}
	}

	return true, Ok
}

// MoveObject attempts to move the object identified by id to (newX, newY),
// checking placement before mutating (spec §4.3): on failure the layout is
// left completely unchanged. The candidate rectangle is built through
// layout.OccupiedRectAt, so a wall's new position is reinterpreted through
// its centerline convention rather than treated as a raw top-left origin.
func MoveObject(l *layout.Layout, id int, newX, newY float64) (bool, Reason) {
	obj := l.GetObject(id)
	if obj == nil {
		return false, NotFound
	}

	candidate := layout.OccupiedRectAt(obj, newX, newY)

	ok, reason := CanPlace(l, candidate, &id)
	if !ok {
		return false, reason
	}

	obj.X = newX
	obj.Y = newY
	return true, Ok
}
