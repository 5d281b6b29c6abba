package render

import (
	"bytes"
	"testing"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
)

func TestSVGProducesValidDocument(t *testing.T) {
	l := layout.NewLayout(100, 80, 0)
	_, _ = l.AddObject(layout.Desk, 10, 10, 20, 20, 0, nil, nil)
	l.ExitPoints = []geometry.Point{{X: 95, Y: 40}}

	data, err := SVG(l, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("expected an <svg> tag in output")
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Fatalf("expected a closing </svg> tag in output")
	}
}

func TestSVGNilLayoutErrors(t *testing.T) {
	if _, err := SVG(nil, nil, DefaultOptions()); err == nil {
		t.Fatalf("expected an error for a nil layout")
	}
}

func TestSVGWithPath(t *testing.T) {
	l := layout.NewLayout(50, 50, 0)
	path := []geometry.Point{{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}}

	data, err := SVG(l, path, Options{Margin: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("polyline")) {
		t.Fatalf("expected a polyline element when a path is provided")
	}
}
