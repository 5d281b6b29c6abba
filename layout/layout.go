package layout

import "github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"

// FreshGridSize is the default grid size for a newly created Layout (spec
// §3.4, editor default). Layouts loaded from persisted state default to
// PersistedGridSize instead (spec §9 open question (c)).
const FreshGridSize = 40.0

// PersistedGridSize is the default grid size adopted when a persisted
// layout's "room" object omits grid_size (spec §6.1).
const PersistedGridSize = 50.0

// Layout is the authoritative in-memory state of a room populated with
// typed objects (spec §3.4). The zero value is not usable; construct one
// with NewLayout or FromSerializable.
type Layout struct {
	RoomWidth    float64
	RoomHeight   float64
	GridSize     float64
	MinClearance float64
	ExitPoints   []geometry.Point

	objects map[int]*Object
	nextID  int
}

// NewLayout creates an empty layout with the given room dimensions. gridSize
// <= 0 adopts FreshGridSize.
func NewLayout(roomWidth, roomHeight float64, gridSize float64) *Layout {
	if gridSize <= 0 {
		gridSize = FreshGridSize
	}
	return &Layout{
		RoomWidth:  roomWidth,
		RoomHeight: roomHeight,
		GridSize:   gridSize,
		objects:    make(map[int]*Object),
		nextID:     1,
	}
}

// RoomRect returns Rect(0, 0, RoomWidth, RoomHeight).
func (l *Layout) RoomRect() geometry.Rect {
	return geometry.Rect{X: 0, Y: 0, Width: l.RoomWidth, Height: l.RoomHeight}
}

// AddObject creates and inserts a new Object, returning it. If forcedID is
// non-nil it is used as the object's ID (and the allocator is advanced past
// it) instead of generating a fresh one. Fails with *InvalidInputError if
// width/height are non-positive or forcedID duplicates an existing ID (spec
// §4.2).
func (l *Layout) AddObject(t ObjectType, x, y, width, height float64, rotation float64, metadata map[string]string, forcedID *int) (*Object, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidInput("object width and height must be positive, got %gx%g", width, height)
	}

	var id int
	if forcedID != nil {
		if _, exists := l.objects[*forcedID]; exists {
			return nil, invalidInput("forced id %d already exists", *forcedID)
		}
		id = *forcedID
		if id >= l.nextID {
			l.nextID = id + 1
		}
	} else {
		id = l.nextID
		l.nextID++
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	obj := &Object{
		ID:       id,
		Type:     t,
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Rotation: rotation,
		Metadata: metadata,
	}
	l.objects[id] = obj
	return obj, nil
}

// RemoveObject deletes the object with the given id. It silently no-ops on
// an unknown id.
func (l *Layout) RemoveObject(id int) {
	delete(l.objects, id)
}

// GetObject returns the object with the given id, or nil if none exists.
func (l *Layout) GetObject(id int) *Object {
	return l.objects[id]
}

// AllObjects returns every object in the layout. Iteration visits each
// object exactly once; order is not guaranteed by this method (callers
// needing deterministic order should sort by ID, as validation and render
// do internally).
func (l *Layout) AllObjects() []*Object {
	out := make([]*Object, 0, len(l.objects))
	for _, o := range l.objects {
		out = append(out, o)
	}
	return out
}

// ObjectsByType returns every object of the given type.
func (l *Layout) ObjectsByType(t ObjectType) []*Object {
	var out []*Object
	for _, o := range l.objects {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out
}
