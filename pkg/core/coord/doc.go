// Package coord provides the coordinate systems that map normalized
// [0,1]x[0,1] chart space onto physical drawing space.
//
// # Overview
//
// Geometry and shape code never inspects a concrete coordinate type. It
// branches on capability queries instead:
//
//   - [Coordinate.IsTransposed]: the x and y channels are swapped
//   - [Coordinate.IsPolar]: x maps to an angle and y to a radius
//   - [Coordinate.Center]: the physical center (polar origin)
//   - [Coordinate.Convert]: normalized point to physical point
//
// Two implementations are provided, [Cartesian] and [Polar], each of which
// may be transposed:
//
//	c := coord.NewCartesian(coord.Point{X: 0, Y: 180}, coord.Point{X: 180, Y: 0})
//	p := c.Convert(coord.Point{X: 0.5, Y: 1}) // {90 0}
//
// Physical space uses screen orientation: y grows downward, so a Cartesian
// frame is usually built with Start at the bottom-left corner and End at
// the top-right corner.
//
// # Dimension Lengths
//
// [XDimensionLength] measures the physical length of the x channel using
// only [Coordinate.Convert], which keeps width resolution independent of
// the concrete coordinate type.
package coord
