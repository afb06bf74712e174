// Package pkg provides the core libraries for chartgeom, a geometry engine
// for interval marks (bars, columns, rose and pie sectors).
//
// # Overview
//
// A chart is data plus visual encodings plus a coordinate system. The pkg
// directory is organized into these areas:
//
//  1. [core] - Domain logic: coordinates, scales, the geometry engine,
//     shape renderers, drawable primitives, themes and output sinks
//  2. [chart] - Declarative TOML/JSON chart documents
//  3. [pipeline] - Orchestration (load → paint → render) with caching
//  4. [cache] - Artifact caches (file, memory, Redis)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	chart document (TOML/JSON)
//	         ↓
//	    [chart] package (decode, resolve files, validate)
//	         ↓
//	    [core/geometry] Initial (scales, zero baseline, default width)
//	         ↓
//	    [core/geometry] Paint (points, nextPoints, clamped width, renderers)
//	         ↓
//	    [core/sink] SVG/PNG/JSON output
//
// # Quick Start
//
// Paint a bar chart directly with the engine:
//
//	import (
//	    "github.com/matzehuels/chartgeom/pkg/core/coord"
//	    "github.com/matzehuels/chartgeom/pkg/core/geometry"
//	    "github.com/matzehuels/chartgeom/pkg/core/sink"
//	)
//
//	e := geometry.New(
//	    geometry.WithData([]map[string]any{
//	        {"genre": "Sports", "sold": 275},
//	        {"genre": "Strategy", "sold": 115},
//	    }),
//	    geometry.WithCoordinate(coord.NewCartesian(
//	        coord.Point{X: 40, Y: 440}, coord.Point{X: 600, Y: 40})),
//	)
//	_ = e.Position("genre*sold")
//	e.Initial()
//	e.Paint()
//	svg := sink.RenderSVG(e.Container(), 640, 480)
//
// Or run a chart document through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ChartPath: "sales.toml",
//	    Formats:   []string{"svg", "png"},
//	})
//
// [core]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/core
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/chart
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/buildinfo
package pkg
