// Package primitive describes the drawable output of shape renderers.
//
// # Shapes
//
// A [Shape] is either a rectangle ([KindRect]) positioned by the x, y,
// width and height style keys, or a path ([KindPath]) whose geometry is a
// [Path] optionally offset by a translation. Every other visual attribute
// (fill, stroke, lineWidth, radius, opacity) lives in the shape's [Style].
//
// Styles are built in two layers: the renderer's encoded values first,
// then caller overrides on top via [Merge], so a caller's style always
// wins over encoded values.
//
// # Paths
//
// [Path] records MoveTo, LineTo, Arc and Close commands with canvas arc
// semantics and serializes them to SVG path data with [Path.D]. Sinks that
// rasterize replay the command list instead of parsing the string.
//
// # Groups
//
// A [Group] is the container shapes are painted into. Destroying a group
// is terminal; adding to a destroyed group panics.
package primitive
