// Command layoutctl validates, routes, and renders office layouts persisted
// as JSON by the layout package.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/AdelinaHritcu/office-layout-planner-PIU/geometry"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/layout"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/render"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/routing"
	"github.com/AdelinaHritcu/office-layout-planner-PIU/validation"
)

const version = "1.0.0"

var (
	op        = flag.String("op", "validate", "Operation to run: validate, route, or render")
	inPath    = flag.String("in", "", "Path to a layout JSON file (required)")
	outPath   = flag.String("out", "", "Output path (required for -op render; an SVG file)")
	startX    = flag.Float64("start-x", 0, "Start point X for -op route")
	startY    = flag.Float64("start-y", 0, "Start point Y for -op route")
	cellSize  = flag.Float64("cell-size", 0, "Routing cell size (0 = layout-derived default)")
	verbose   = flag.Bool("verbose", false, "Enable verbose output")
	versionF  = flag.Bool("version", false, "Print version and exit")
	help      = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("layoutctl version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required")
		printUsage()
		os.Exit(1)
	}

	validOps := map[string]bool{"validate": true, "route": true, "render": true}
	if !validOps[*op] {
		fmt.Fprintf(os.Stderr, "Error: invalid op %q, must be one of: validate, route, render\n", *op)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading layout from %s\n", *inPath)
	}

	l, err := layout.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}

	if *verbose {
		fmt.Printf("Room %gx%g, %d objects, %d exit points\n", l.RoomWidth, l.RoomHeight, len(l.AllObjects()), len(l.ExitPoints))
	}

	switch *op {
	case "validate":
		return runValidate(l)
	case "route":
		return runRoute(l)
	case "render":
		return runRender(l)
	default:
		return fmt.Errorf("unreachable: op %q", *op)
	}
}

func runValidate(l *layout.Layout) error {
	start := time.Now()
	errs := validation.Validate(l)
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Validation completed in %v\n", elapsed)
	}

	if len(errs) == 0 {
		fmt.Println("Layout is valid, no problems found")
		return nil
	}

	hardCount := 0
	for _, e := range errs {
		status := "error"
		if e.IsAdvisory() {
			status = "advisory"
		} else {
			hardCount++
		}
		fmt.Printf("[%s] %s\n", status, e.Error())
	}

	fmt.Printf("Found %d problem(s), %d hard error(s)\n", len(errs), hardCount)
	if hardCount > 0 {
		os.Exit(1)
	}
	return nil
}

func runRoute(l *layout.Layout) error {
	start := geometry.Point{X: *startX, Y: *startY}

	path, ok := routing.FindShortestPathToExit(l, start, *cellSize)
	if !ok {
		fmt.Println("No path to any exit")
		os.Exit(1)
	}

	fmt.Printf("Path found with %d point(s):\n", len(path))
	for _, p := range path {
		fmt.Printf("  (%g, %g)\n", p.X, p.Y)
	}
	return nil
}

func runRender(l *layout.Layout) error {
	if *outPath == "" {
		return fmt.Errorf("-out is required for -op render")
	}

	var path []geometry.Point
	if *startX != 0 || *startY != 0 {
		if p, ok := routing.FindShortestPathToExit(l, geometry.Point{X: *startX, Y: *startY}, *cellSize); ok {
			path = p
		}
	}

	opts := render.DefaultOptions()
	data, err := render.SVG(l, path, opts)
	if err != nil {
		return fmt.Errorf("failed to render SVG: %w", err)
	}

	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *outPath, err)
	}

	if *verbose {
		fmt.Printf("Wrote %d bytes to %s\n", len(data), *outPath)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: layoutctl -in <layout.json> [-op validate|route|render] [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'layoutctl -help' for detailed help")
}

func printHelp() {
	fmt.Printf("layoutctl version %s\n\n", version)
	fmt.Println("A command-line tool for validating, routing, and rendering office layouts.")
	fmt.Println("\nUsage:")
	fmt.Println("  layoutctl -in <layout.json> [-op validate|route|render] [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -in string")
	fmt.Println("        Path to a layout JSON file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -op string")
	fmt.Println("        Operation to run: validate, route, or render (default: validate)")
	fmt.Println("  -out string")
	fmt.Println("        Output SVG path (required for -op render)")
	fmt.Println("  -start-x, -start-y float")
	fmt.Println("        Start point for -op route (and for drawing a path with -op render)")
	fmt.Println("  -cell-size float")
	fmt.Println("        Routing cell size (default: 0, meaning layout-derived)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  layoutctl -in office.json -op validate")
	fmt.Println("  layoutctl -in office.json -op route -start-x 15 -start-y 15")
	fmt.Println("  layoutctl -in office.json -op render -out office.svg")
}
