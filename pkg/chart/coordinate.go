package chart

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Coordinate types.
const (
	CoordRect  = "rect"
	CoordPolar = "polar"
	// CoordTheta is a transposed polar coordinate: values sweep angles,
	// as in pie and donut charts.
	CoordTheta = "theta"
)

// Coordinate describes the coordinate system of a chart. Angles are in
// degrees, measured clockwise from three o'clock.
type Coordinate struct {
	Type        string   `toml:"type" json:"type,omitempty"`
	Transposed  bool     `toml:"transposed" json:"transposed,omitempty"`
	InnerRadius float64  `toml:"inner_radius" json:"inner_radius,omitempty"`
	Radius      *float64 `toml:"radius" json:"radius,omitempty"`
	StartAngle  *float64 `toml:"start_angle" json:"start_angle,omitempty"`
	EndAngle    *float64 `toml:"end_angle" json:"end_angle,omitempty"`
}

// Validate checks the type and radius fractions.
func (c Coordinate) Validate() error {
	switch c.Type {
	case "", CoordRect, CoordPolar, CoordTheta:
	default:
		return errors.New(errors.ErrCodeInvalidCoordinate, "unknown coordinate type %q (want rect, polar or theta)", c.Type)
	}
	if c.InnerRadius < 0 || c.InnerRadius >= 1 {
		return errors.New(errors.ErrCodeInvalidCoordinate, "inner_radius must be in [0, 1), got %g", c.InnerRadius)
	}
	if c.Radius != nil && (*c.Radius <= 0 || *c.Radius > 1) {
		return errors.New(errors.ErrCodeInvalidCoordinate, "radius must be in (0, 1], got %g", *c.Radius)
	}
	if c.StartAngle != nil && c.EndAngle != nil && *c.StartAngle == *c.EndAngle {
		return errors.New(errors.ErrCodeInvalidCoordinate, "start_angle and end_angle must differ")
	}
	return nil
}

// Build returns the coordinate spanning a width x height canvas inset by
// padding. Normalized y grows upwards.
func (c Coordinate) Build(width, height, padding float64) coord.Coordinate {
	start := coord.Point{X: padding, Y: height - padding}
	end := coord.Point{X: width - padding, Y: padding}

	switch c.Type {
	case CoordPolar, CoordTheta:
		p := coord.NewPolar(start, end)
		p.InnerRadius = c.InnerRadius
		if c.Radius != nil {
			p.Radius = *c.Radius
		}
		if c.StartAngle != nil {
			p.StartAngle = radians(*c.StartAngle)
		}
		if c.EndAngle != nil {
			p.EndAngle = radians(*c.EndAngle)
		}
		// theta is itself transposed, so transposing it again undoes it
		if theta := c.Type == CoordTheta; theta != c.Transposed {
			p = p.Transpose()
		}
		return p
	}
	r := coord.NewCartesian(start, end)
	if c.Transposed {
		r = r.Transpose()
	}
	return r
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
