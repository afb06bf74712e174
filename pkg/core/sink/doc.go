// Package sink serializes painted primitives into output formats.
//
// # Overview
//
// A sink receives the container a geometry engine painted into and
// produces the final artifact:
//
//   - SVG: vector output written with ajstarks/svgo
//   - PNG: raster output drawn with fogleman/gg
//   - JSON: shape descriptions for external tools
//
// All sinks draw shapes in container order, so later shapes paint over
// earlier ones. Rectangles with a "radius" style are drawn as rounded
// rectangles; path shapes are replayed from their command list, not parsed
// from the path string.
//
// Basic usage:
//
//	svg := sink.RenderSVG(e.Container(), 640, 480,
//	    sink.WithBackground(th.Background),
//	    sink.WithIDs(ids),
//	)
//
// # SVG Options
//
//   - [WithBackground]: fill the canvas before drawing shapes
//   - [WithIDs]: attach element IDs to shapes
//   - [WithTitle]: add a document title
//
// # PNG Options
//
//   - [WithPNGBackground]: fill the canvas before drawing shapes
//   - [WithScale]: resolution multiplier (default 2.0)
package sink
