package geometry

import (
	"github.com/google/uuid"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

// Record is one data row with its resolved channel values.
type Record struct {
	// Origin is the source data row.
	Origin map[string]any
	// X is the translated x value: category index, Unix milliseconds or
	// the number itself.
	X float64
	// Y holds one translated value, or two for range bars.
	Y []float64
	// Color is the resolved fill color; empty uses the theme default.
	Color string
	// Size is a per-record width in pixels from the size channel.
	Size *float64

	// Points are the normalized corners (top-left, top-right,
	// bottom-right, bottom-left), set by BeforeMapping.
	Points []coord.Point
	// NextPoints are the corners of the adjacent record, or nil.
	NextPoints []coord.Point
}

// ShapePointsCfg is the normalized geometry input for one record.
type ShapePointsCfg struct {
	X float64
	// Y holds the normalized value, or both ends for range bars.
	Y []float64
	// Y0 is the normalized baseline.
	Y0 float64
	// Size is the normalized width.
	Size float64
}

// Bounds returns the low and high ends of the bar.
func (c ShapePointsCfg) Bounds() (lo, hi float64) {
	switch len(c.Y) {
	case 0:
		return c.Y0, c.Y0
	case 1:
		return c.Y0, c.Y[0]
	}
	return c.Y[0], c.Y[1]
}

// RectPoints returns the four normalized corners of cfg.
func RectPoints(cfg ShapePointsCfg) []coord.Point {
	yMin, yMax := cfg.Bounds()
	xMin, xMax := cfg.X-cfg.Size/2, cfg.X+cfg.Size/2
	return []coord.Point{
		{X: xMin, Y: yMax},
		{X: xMax, Y: yMax},
		{X: xMax, Y: yMin},
		{X: xMin, Y: yMin},
	}
}

// Element is a painted record.
type Element struct {
	// ID is stable across repaints of the same data.
	ID     uuid.UUID
	Record *Record
	Shape  *primitive.Shape
}

// elementSpace namespaces element IDs.
var elementSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("chartgeom/element"))

func elementID(key string) uuid.UUID {
	return uuid.NewSHA1(elementSpace, []byte(key))
}
