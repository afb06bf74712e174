// Package shape renders interval geometry into drawable primitives.
//
// # Overview
//
// A [Renderer] receives the four physical corner points of one record
// (ordered top-left, top-right, bottom-right, bottom-left in normalized
// space), the record's encoded [Value], the coordinate system and the
// theme, and returns a single [primitive.Shape]. Renderers never fail:
// degenerate input produces a zero-sized shape.
//
// Built-in renderers, resolved by name through a [Registry]:
//
//   - "rect": filled rectangle, or annular sector in polar coordinates
//   - "hollow-rect": the same outline stroked with a 2px line
//   - "line": a centre line from the baseline to the value
//   - "tick": an I-beam marking the value and baseline extents
//
// # Coordinate Handling
//
// In transposed coordinates the corner order is rotated by one so the
// first two points always span the categorical extent. Cartesian output is
// a rectangle normalized to non-negative width and height. Polar output is
// a [Sector] path relative to the coordinate center, placed with a
// translate transform:
//
//	r, _ := shape.Default.New("rect", primitive.Style{"radius": 4.0})
//	s := r.Render(points, shape.Value{Y: 1, Y1: 0}, polar, theme.Default())
package shape
