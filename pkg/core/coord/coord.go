package coord

import "math"

// Point is a position in either normalized or physical space.
type Point struct {
	X, Y float64
}

// Coordinate converts normalized chart positions to physical positions.
type Coordinate interface {
	// IsTransposed reports whether the x and y channels are swapped.
	IsTransposed() bool
	// IsPolar reports whether x maps to an angle and y to a radius.
	IsPolar() bool
	// Center returns the physical center of the plotting region.
	Center() Point
	// Convert maps a normalized point to physical space.
	Convert(p Point) Point
}

// lengthSegments is the number of samples used to measure a dimension.
const lengthSegments = 64

// XDimensionLength returns the physical length swept by the x channel along
// the outer edge (y = 1). Curved dimensions are approximated by a polyline.
func XDimensionLength(c Coordinate) float64 {
	if c == nil {
		return 0
	}
	var length float64
	prev := c.Convert(Point{X: 0, Y: 1})
	for i := 1; i <= lengthSegments; i++ {
		next := c.Convert(Point{X: float64(i) / lengthSegments, Y: 1})
		length += Distance(prev, next)
		prev = next
	}
	return length
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
