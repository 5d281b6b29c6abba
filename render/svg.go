package render

import (
	"bytes"
	"fmt"
	"sort"

	svgo "github.com/ajstarks/svgo"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
)

// Options configures SVG export.
type Options struct {
	Margin     int    // canvas margin in pixels (default 20)
	ShowLabels bool   // draw object type + ID labels
	ShowLegend bool   // draw a type/color legend
	Title      string // optional title drawn above the room
}

// DefaultOptions returns sensible defaults for SVG export.
func DefaultOptions() Options {
	return Options{Margin: 20, ShowLabels: true, ShowLegend: true}
}

// typeColor is the per-type fill color used both for objects and the legend.
var typeColor = map[layout.ObjectType]string{
	layout.Desk:         "#4299e1",
	layout.Chair:        "#63b3ed",
	layout.Armchair:     "#9f7aea",
	layout.Plant:        "#48bb78",
	layout.Wall:         "#2d3748",
	layout.Door:         "#ed8936",
	layout.Printer:      "#718096",
	layout.MeetingTable: "#3182ce",
	layout.Sink:         "#38b2ac",
	layout.Toilet:       "#a0aec0",
	layout.Washbasin:    "#81e6d9",
}

// SVG renders l (and, if non-empty, a routed path polyline) to SVG bytes.
// The canvas is sized to the room plus opts.Margin on every side, with extra
// height below for the legend when opts.ShowLegend is set; one pixel equals
// one layout unit.
func SVG(l *layout.Layout, path []geometry.Point, opts Options) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("render: layout must not be nil")
	}
	if opts.Margin <= 0 {
		opts.Margin = 20
	}

	width := int(l.RoomWidth) + 2*opts.Margin
	height := int(l.RoomHeight) + 2*opts.Margin
	if opts.ShowLegend {
		height += 20 * (len(typeColor) + 1)
	}

	buf := new(bytes.Buffer)
	canvas := svgo.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f7fafc")

	ox, oy := opts.Margin, opts.Margin
	canvas.Rect(ox, oy, int(l.RoomWidth), int(l.RoomHeight), "fill:none;stroke:#1a202c;stroke-width:2")

	objs := l.AllObjects()
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID < objs[j].ID })

	for _, obj := range objs {
		r := layout.OccupiedRect(obj)
		color := typeColor[obj.Type]
		if color == "" {
			color = "#cbd5e0"
		}
		canvas.Rect(ox+int(r.X), oy+int(r.Y), int(r.Width), int(r.Height),
			fmt.Sprintf("fill:%s;stroke:#1a202c;stroke-width:1;opacity:0.85", color))

		if opts.ShowLabels {
			canvas.Text(ox+int(r.X)+2, oy+int(r.Y)+12, fmt.Sprintf("%s #%d", obj.Type, obj.ID),
				"font-size:9px;fill:#1a202c")
		}
	}

	for _, exit := range l.ExitPoints {
		canvas.Circle(ox+int(exit.X), oy+int(exit.Y), 5, "fill:#e53e3e;stroke:#fff;stroke-width:1")
	}

	if len(path) > 1 {
		xs := make([]int, len(path))
		ys := make([]int, len(path))
		for i, p := range path {
			xs[i] = ox + int(p.X)
			ys[i] = oy + int(p.Y)
		}
		canvas.Polyline(xs, ys, "fill:none;stroke:#d53f8c;stroke-width:2;stroke-dasharray:4,3")
	}

	if opts.ShowLegend {
		drawLegend(canvas, int(l.RoomHeight)+2*opts.Margin, opts)
	}

	if opts.Title != "" {
		canvas.Text(ox, oy-6, opts.Title, "font-size:14px;fill:#1a202c;font-weight:bold")
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawLegend(canvas *svgo.SVG, top int, opts Options) {
	types := make([]layout.ObjectType, 0, len(typeColor))
	for t := range typeColor {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })

	y := top + 16
	for _, t := range types {
		canvas.Rect(opts.Margin, y, 12, 12, fmt.Sprintf("fill:%s;stroke:#1a202c", typeColor[t]))
		canvas.Text(opts.Margin+18, y+10, t.String(), "font-size:11px;fill:#1a202c")
		y += 20
	}
}
