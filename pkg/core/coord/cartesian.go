package coord

// Cartesian is a rectangular coordinate system spanning Start to End.
// Normalized (0,0) maps to Start and (1,1) maps to End.
type Cartesian struct {
	Start, End Point
	Transposed bool
}

// NewCartesian returns a Cartesian coordinate spanning start to end.
func NewCartesian(start, end Point) *Cartesian {
	return &Cartesian{Start: start, End: end}
}

// Transpose returns a copy with the x and y channels swapped.
func (c *Cartesian) Transpose() *Cartesian {
	out := *c
	out.Transposed = !c.Transposed
	return &out
}

func (c *Cartesian) IsTransposed() bool { return c.Transposed }
func (c *Cartesian) IsPolar() bool      { return false }

func (c *Cartesian) Center() Point {
	return Point{X: (c.Start.X + c.End.X) / 2, Y: (c.Start.Y + c.End.Y) / 2}
}

func (c *Cartesian) Convert(p Point) Point {
	if c.Transposed {
		p.X, p.Y = p.Y, p.X
	}
	return Point{
		X: c.Start.X + p.X*(c.End.X-c.Start.X),
		Y: c.Start.Y + p.Y*(c.End.Y-c.Start.Y),
	}
}
