package coord

import "math"

// Default polar sweep: a full revolution starting at twelve o'clock.
const (
	DefaultStartAngle = -math.Pi / 2
	DefaultEndAngle   = 3 * math.Pi / 2
)

// Polar maps x to an angle and y to a radius around the center of the
// bounding box spanned by Start and End.
//
// Angles are in radians using screen orientation, so -π/2 points up and
// angles grow clockwise. InnerRadius and Radius are fractions of the largest
// circle that fits the bounding box.
type Polar struct {
	Start, End           Point
	StartAngle, EndAngle float64
	InnerRadius, Radius  float64
	Transposed           bool
}

// NewPolar returns a full-revolution polar coordinate filling the box.
func NewPolar(start, end Point) *Polar {
	return &Polar{
		Start:      start,
		End:        end,
		StartAngle: DefaultStartAngle,
		EndAngle:   DefaultEndAngle,
		Radius:     1,
	}
}

// Transpose returns a copy with the x and y channels swapped. A transposed
// polar coordinate maps x to the radius and y to the angle (pie charts).
func (c *Polar) Transpose() *Polar {
	out := *c
	out.Transposed = !c.Transposed
	return &out
}

func (c *Polar) IsTransposed() bool { return c.Transposed }
func (c *Polar) IsPolar() bool      { return true }

func (c *Polar) Center() Point {
	return Point{X: (c.Start.X + c.End.X) / 2, Y: (c.Start.Y + c.End.Y) / 2}
}

// MaxRadius returns the physical outer radius.
func (c *Polar) MaxRadius() float64 {
	w := math.Abs(c.End.X - c.Start.X)
	h := math.Abs(c.End.Y - c.Start.Y)
	r := c.Radius
	if r <= 0 {
		r = 1
	}
	return math.Min(w, h) / 2 * r
}

func (c *Polar) Convert(p Point) Point {
	if c.Transposed {
		p.X, p.Y = p.Y, p.X
	}
	outer := c.MaxRadius()
	inner := outer * c.InnerRadius
	angle := c.StartAngle + p.X*(c.EndAngle-c.StartAngle)
	r := inner + p.Y*(outer-inner)
	center := c.Center()
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}
