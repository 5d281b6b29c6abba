package layout

import (
	"path/filepath"
	"testing"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
)

func buildSampleLayout(t *testing.T) *Layout {
	t.Helper()
	l := NewLayout(300, 200, 40)
	forced := 7
	if _, err := l.AddObject(Desk, 10, 10, 120, 60, 0, map[string]string{"ui_type": "Standing Desk"}, &forced); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.AddObject(Chair, 150, 10, 40, 40, 0, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.ExitPoints = append(l.ExitPoints, geometry.Point{X: 290, Y: 100})
	return l
}

func TestRoundTripSerializable(t *testing.T) {
	l := buildSampleLayout(t)

	reloaded, err := FromSerializable(l.ToSerializable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reloaded.RoomWidth != l.RoomWidth || reloaded.RoomHeight != l.RoomHeight || reloaded.GridSize != l.GridSize {
		t.Fatalf("room fields mismatch: got %+v", reloaded)
	}
	if len(reloaded.AllObjects()) != len(l.AllObjects()) {
		t.Fatalf("object count mismatch")
	}
	desk := reloaded.GetObject(7)
	if desk == nil {
		t.Fatalf("expected forced id 7 to survive round trip")
	}
	if desk.Metadata["ui_type"] != "Standing Desk" {
		t.Fatalf("metadata did not survive round trip: %+v", desk.Metadata)
	}
	if len(reloaded.ExitPoints) != 1 || reloaded.ExitPoints[0] != (geometry.Point{X: 290, Y: 100}) {
		t.Fatalf("exit points did not survive round trip: %+v", reloaded.ExitPoints)
	}

	next, err := reloaded.AddObject(Chair, 0, 0, 10, 10, 0, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.ID < 8 {
		t.Fatalf("next generated id after reload must be >= 8, got %d", next.ID)
	}
}

func TestWriteFileThenReadFileRoundTrips(t *testing.T) {
	l := buildSampleLayout(t)
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := WriteFile(l, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.AllObjects()) != len(l.AllObjects()) {
		t.Fatalf("object count mismatch after file round trip")
	}
}

func TestWriteFileRejectsNonJSONExtension(t *testing.T) {
	l := buildSampleLayout(t)
	path := filepath.Join(t.TempDir(), "layout.txt")
	if err := WriteFile(l, path); err == nil {
		t.Fatalf("expected error for non-.json path")
	}
}

func TestFromSerializableDefaultsGridSizeTo50(t *testing.T) {
	l, err := FromSerializable(map[string]any{
		"room": map[string]any{"width": 100.0, "height": 100.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.GridSize != PersistedGridSize {
		t.Fatalf("got grid size %v, want %v", l.GridSize, PersistedGridSize)
	}
}

func TestNewLayoutDefaultsGridSizeTo40(t *testing.T) {
	l := NewLayout(100, 100, 0)
	if l.GridSize != FreshGridSize {
		t.Fatalf("got grid size %v, want %v", l.GridSize, FreshGridSize)
	}
}
