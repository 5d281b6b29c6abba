package layout

import "fmt"

// ObjectType is the closed enumeration of placeable object kinds (spec §3.2).
type ObjectType int

const (
	Desk ObjectType = iota
	Chair
	Armchair
	Plant
	Wall
	Door
	Printer
	MeetingTable
	Sink
	Toilet
	Washbasin
)

// String returns the lowercase enum name used both for display and as the
// persisted "type" value (spec §6.1).
func (t ObjectType) String() string {
	switch t {
	case Desk:
		return "desk"
	case Chair:
		return "chair"
	case Armchair:
		return "armchair"
	case Plant:
		return "plant"
	case Wall:
		return "wall"
	case Door:
		return "door"
	case Printer:
		return "printer"
	case MeetingTable:
		return "meeting_table"
	case Sink:
		return "sink"
	case Toilet:
		return "toilet"
	case Washbasin:
		return "washbasin"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseObjectType resolves a persisted "type" string back to an ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	for t := Desk; t <= Washbasin; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown object type %q", s)
}

// TypeInfo is the static metadata associated with an ObjectType (spec §3.2,
// authoritative values in spec §6.3).
type TypeInfo struct {
	DefaultWidth          float64
	DefaultHeight         float64
	MinDistanceToSameType float64
	MinDistanceToOther    float64
	Category              string
	Walkable              bool
}

// typeTable holds the authoritative per-type metadata. DOOR is the only
// walkable type; every other type blocks routing.
var typeTable = map[ObjectType]TypeInfo{
	Desk:         {DefaultWidth: 120, DefaultHeight: 60, MinDistanceToSameType: 50, MinDistanceToOther: 30, Category: "furniture", Walkable: false},
	Chair:        {DefaultWidth: 40, DefaultHeight: 40, MinDistanceToSameType: 20, MinDistanceToOther: 20, Category: "furniture", Walkable: false},
	Armchair:     {DefaultWidth: 60, DefaultHeight: 60, MinDistanceToSameType: 20, MinDistanceToOther: 20, Category: "furniture", Walkable: false},
	Plant:        {DefaultWidth: 40, DefaultHeight: 40, MinDistanceToSameType: 10, MinDistanceToOther: 10, Category: "decoration", Walkable: false},
	Wall:         {DefaultWidth: 100, DefaultHeight: 10, MinDistanceToSameType: 0, MinDistanceToOther: 0, Category: "infrastructure", Walkable: false},
	Door:         {DefaultWidth: 80, DefaultHeight: 10, MinDistanceToSameType: 0, MinDistanceToOther: 0, Category: "infrastructure", Walkable: true},
	Printer:      {DefaultWidth: 50, DefaultHeight: 50, MinDistanceToSameType: 20, MinDistanceToOther: 20, Category: "infrastructure", Walkable: false},
	MeetingTable: {DefaultWidth: 200, DefaultHeight: 100, MinDistanceToSameType: 50, MinDistanceToOther: 40, Category: "furniture", Walkable: false},
	Sink:         {DefaultWidth: 60, DefaultHeight: 40, MinDistanceToSameType: 10, MinDistanceToOther: 10, Category: "infrastructure", Walkable: false},
	Toilet:       {DefaultWidth: 60, DefaultHeight: 60, MinDistanceToSameType: 10, MinDistanceToOther: 10, Category: "infrastructure", Walkable: false},
	Washbasin:    {DefaultWidth: 50, DefaultHeight: 40, MinDistanceToSameType: 10, MinDistanceToOther: 10, Category: "infrastructure", Walkable: false},
}

// GetTypeInfo returns the static metadata for t. It panics if t is not a
// member of the closed enumeration, the same contract as a map lookup on an
// exhaustively-populated table.
func GetTypeInfo(t ObjectType) TypeInfo {
	info, ok := typeTable[t]
	if !ok {
		panic(fmt.Sprintf("layout: no TypeInfo registered for ObjectType %v", t))
	}
	return info
}

// IsWalkable reports whether routing may traverse cells covered by t.
func IsWalkable(t ObjectType) bool {
	return GetTypeInfo(t).Walkable
}
