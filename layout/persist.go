package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
)

// ToSerializable returns l as a plain map ready for JSON encoding (spec
// §6.1). Go's encoding/json sorts map[string]any keys alphabetically, which
// is what gives the persisted format its sorted-keys guarantee without a
// hand-rolled key-ordering step.
func (l *Layout) ToSerializable() map[string]any {
	ids := make([]int, 0, len(l.objects))
	for id := range l.objects {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	objects := make([]any, 0, len(ids))
	for _, id := range ids {
		o := l.objects[id]
		meta := make(map[string]any, len(o.Metadata))
		for k, v := range o.Metadata {
			meta[k] = v
		}
		objects = append(objects, map[string]any{
			"id":       o.ID,
			"type":     o.Type.String(),
			"x":        o.X,
			"y":        o.Y,
			"width":    o.Width,
			"height":   o.Height,
			"rotation": o.Rotation,
			"metadata": meta,
		})
	}

	exits := make([]any, 0, len(l.ExitPoints))
	for _, p := range l.ExitPoints {
		exits = append(exits, map[string]any{"x": p.X, "y": p.Y})
	}

	return map[string]any{
		"room": map[string]any{
			"width":     l.RoomWidth,
			"height":    l.RoomHeight,
			"grid_size": l.GridSize,
		},
		"objects":     objects,
		"exit_points": exits,
	}
}

// FromSerializable reconstructs a Layout from the map produced by
// ToSerializable (or an equivalent JSON document). Unknown keys are
// ignored; missing optional keys adopt their spec-mandated defaults
// (rotation=0, metadata={}, grid_size=PersistedGridSize).
func FromSerializable(data map[string]any) (*Layout, error) {
	room, _ := data["room"].(map[string]any)

	roomWidth := floatField(room, "width", 800)
	roomHeight := floatField(room, "height", 600)
	gridSize := floatField(room, "grid_size", PersistedGridSize)
	if gridSize <= 0 {
		gridSize = PersistedGridSize
	}

	l := NewLayout(roomWidth, roomHeight, gridSize)

	rawObjects, _ := data["objects"].([]any)
	for _, raw := range rawObjects {
		om, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		typeName, _ := om["type"].(string)
		t, err := ParseObjectType(typeName)
		if err != nil {
			return nil, fmt.Errorf("layout: decoding object: %w", err)
		}

		id := int(floatField(om, "id", 0))
		metadata := map[string]string{}
		if rawMeta, ok := om["metadata"].(map[string]any); ok {
			for k, v := range rawMeta {
				if s, ok := v.(string); ok {
					metadata[k] = s
				} else {
					metadata[k] = fmt.Sprintf("%v", v)
				}
			}
		}

		_, err = l.AddObject(
			t,
			floatField(om, "x", 0),
			floatField(om, "y", 0),
			floatField(om, "width", 0),
			floatField(om, "height", 0),
			floatField(om, "rotation", 0),
			metadata,
			&id,
		)
		if err != nil {
			return nil, fmt.Errorf("layout: adding object %d: %w", id, err)
		}
	}

	rawExits, _ := data["exit_points"].([]any)
	for _, raw := range rawExits {
		em, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		l.ExitPoints = append(l.ExitPoints, geometry.Point{
			X: floatField(em, "x", 0),
			Y: floatField(em, "y", 0),
		})
	}

	return l, nil
}

func floatField(m map[string]any, key string, def float64) float64 {
	if m == nil {
		return def
	}
	v, ok := m[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}

// WriteFile serializes l as indented, sorted-key JSON with a trailing
// newline and writes it atomically to path (temp file in the same directory,
// then rename; the temp file is removed on any failure). Only .json paths
// are accepted.
func WriteFile(l *Layout, path string) error {
	if filepath.Ext(path) != ".json" {
		return fmt.Errorf("layout: refusing to write non-.json path %q", path)
	}

	data, err := json.MarshalIndent(l.ToSerializable(), "", "  ")
	if err != nil {
		return fmt.Errorf("layout: marshaling: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".layout-*.tmp")
	if err != nil {
		return fmt.Errorf("layout: creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("layout: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("layout: closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("layout: renaming temp file into place: %w", err)
	}

	success = true
	return nil
}

// ReadFile loads a layout previously written by WriteFile. Only .json paths
// are accepted; the root JSON value must be an object.
func ReadFile(path string) (*Layout, error) {
	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("layout: refusing to read non-.json path %q", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("layout: root JSON value must be an object: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("layout: root JSON value must be an object, got null")
	}

	return FromSerializable(data)
}
