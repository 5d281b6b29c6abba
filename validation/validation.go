package validation

import (
	"fmt"
	"math"
	"sort"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/routing"
)

// Kind identifies the class of problem a ValidationError reports (spec §7).
type Kind int

const (
	OutOfBounds Kind = iota
	Collision
	DistanceTooSmall
	Overcrowding
	NoPathToExit
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "OutOfBounds"
	case Collision:
		return "Collision"
	case DistanceTooSmall:
		return "DistanceTooSmall"
	case Overcrowding:
		return "Overcrowding"
	case NoPathToExit:
		return "NoPathToExit"
	default:
		return "Unknown"
	}
}

// ValidationError reports one independent problem found by Validate.
// ObjectIDs holds the objects involved: one ID for OutOfBounds and
// NoPathToExit, two for Collision/DistanceTooSmall/Overcrowding. Required and
// Actual are only meaningful for DistanceTooSmall.
type ValidationError struct {
	Kind      Kind
	ObjectIDs []int
	Required  float64
	Actual    float64
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case DistanceTooSmall:
		return fmt.Sprintf("%s: objects %v are %.4g apart, require %.4g", e.Kind, e.ObjectIDs, e.Actual, e.Required)
	default:
		return fmt.Sprintf("%s: objects %v", e.Kind, e.ObjectIDs)
	}
}

// IsAdvisory reports whether e is a soft warning (Overcrowding) rather than a
// hard error, letting callers filter a validation report.
func (e *ValidationError) IsAdvisory() bool {
	return e.Kind == Overcrowding
}

// DefaultClutterThreshold is the center-to-center distance below which a pair
// of objects is flagged as Overcrowding (spec §9 open question (b): the
// source hard-codes this with no documented rationale, so it is exposed here
// as an overridable constant instead).
const DefaultClutterThreshold = 25.0

// Options configures Validate. The zero value uses DefaultClutterThreshold.
type Options struct {
	ClutterThreshold float64
}

// Validate runs every check against l and returns the accumulated list of
// problems (spec §4.4), iterating objects in ID order so the result is
// reproducible for a given layout regardless of map iteration order.
func Validate(l *layout.Layout) []ValidationError {
	return ValidateWithOptions(l, Options{})
}

// ValidateWithOptions is Validate with a configurable clutter threshold.
func ValidateWithOptions(l *layout.Layout, opts Options) []ValidationError {
	threshold := opts.ClutterThreshold
	if threshold <= 0 {
		threshold = DefaultClutterThreshold
	}

	objs := sortedObjects(l)
	var errs []ValidationError

	errs = append(errs, checkOutOfBounds(l, objs)...)
	errs = append(errs, checkCollisions(objs)...)
	errs = append(errs, checkDistances(objs)...)
	errs = append(errs, checkOvercrowding(objs, threshold)...)
	errs = append(errs, checkReachability(l, objs)...)

	return errs
}

func sortedObjects(l *layout.Layout) []*layout.Object {
	objs := l.AllObjects()
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID < objs[j].ID })
	return objs
}

func checkOutOfBounds(l *layout.Layout, objs []*layout.Object) []ValidationError {
	room := l.RoomRect()
	var errs []ValidationError
	for _, obj := range objs {
		if !geometry.Contains(room, layout.OccupiedRect(obj)) {
			errs = append(errs, ValidationError{Kind: OutOfBounds, ObjectIDs: []int{obj.ID}})
		}
	}
	return errs
}

func checkCollisions(objs []*layout.Object) []ValidationError {
	var errs []ValidationError
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			a, b := objs[i], objs[j]
			if a.Type == layout.Wall && b.Type == layout.Wall {
				continue
			}
			if geometry.Intersects(layout.OccupiedRect(a), layout.OccupiedRect(b)) {
				errs = append(errs, ValidationError{Kind: Collision, ObjectIDs: []int{a.ID, b.ID}})
			}
		}
	}
	return errs
}

func checkDistances(objs []*layout.Object) []ValidationError {
	var errs []ValidationError
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			a, b := objs[i], objs[j]

			infoA := layout.GetTypeInfo(a.Type)
			infoB := layout.GetTypeInfo(b.Type)

			var requiredA, requiredB float64
			if a.Type == b.Type {
				requiredA, requiredB = infoA.MinDistanceToSameType, infoB.MinDistanceToSameType
			} else {
				requiredA, requiredB = infoA.MinDistanceToOther, infoB.MinDistanceToOther
			}
			required := math.Max(requiredA, requiredB)
			if required <= 0 {
				continue
			}

			actual := geometry.DistanceRectToRect(layout.OccupiedRect(a), layout.OccupiedRect(b))
			if actual < required {
				errs = append(errs, ValidationError{
					Kind:      DistanceTooSmall,
					ObjectIDs: []int{a.ID, b.ID},
					Required:  required,
					Actual:    actual,
				})
			}
		}
	}
	return errs
}

func checkOvercrowding(objs []*layout.Object, threshold float64) []ValidationError {
	var errs []ValidationError
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			a, b := objs[i], objs[j]
			ca, cb := rectCenter(layout.OccupiedRect(a)), rectCenter(layout.OccupiedRect(b))
			if math.Hypot(ca.X-cb.X, ca.Y-cb.Y) < threshold {
				errs = append(errs, ValidationError{Kind: Overcrowding, ObjectIDs: []int{a.ID, b.ID}})
			}
		}
	}
	return errs
}

func checkReachability(l *layout.Layout, objs []*layout.Object) []ValidationError {
	if len(l.ExitPoints) == 0 {
		return nil
	}

	var start *layout.Object
	for _, obj := range objs {
		if obj.Type != layout.Wall {
			start = obj
			break
		}
	}
	if start == nil {
		return nil
	}

	startPoint := rectCenter(layout.OccupiedRect(start))
	cellSize := routing.DefaultCellSize(l)
	if _, ok := routing.FindShortestPathToExit(l, startPoint, cellSize); !ok {
		return []ValidationError{{Kind: NoPathToExit, ObjectIDs: []int{start.ID}}}
	}
	return nil
}

func rectCenter(r geometry.Rect) geometry.Point {
	return geometry.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
