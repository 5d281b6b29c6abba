// Package layout holds the authoritative in-memory model of an office
// layout: room dimensions, the typed objects placed in it, exit points, and
// the ID allocator that issues object identities. It is pure data plus CRUD
// operations; geometric rules live in the placement, validation, and
// routing packages, which all read a Layout through OccupiedRect rather than
// re-deriving object geometry themselves.
package layout
