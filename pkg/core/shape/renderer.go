package shape

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/core/theme"
)

const (
	tau      = 2 * math.Pi
	angleEps = 1e-9
)

// Value is the encoded channel data of one record.
type Value struct {
	// Y and Y1 are the normalized value and baseline ends.
	Y, Y1 float64
	// Color is the encoded color; empty falls back to the theme default.
	Color string
}

// Renderer turns corner points into a primitive.
type Renderer interface {
	Render(points []coord.Point, v Value, c coord.Coordinate, th *theme.Theme) *primitive.Shape
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(points []coord.Point, v Value, c coord.Coordinate, th *theme.Theme) *primitive.Shape

func (f RendererFunc) Render(points []coord.Point, v Value, c coord.Coordinate, th *theme.Theme) *primitive.Shape {
	return f(points, v, c, th)
}

// ColorAttribute selects which style key carries the encoded color.
type ColorAttribute string

const (
	ColorFill   ColorAttribute = primitive.StyleFill
	ColorStroke ColorAttribute = primitive.StyleStroke
)

// reorder rotates corners so p0 and p1 span the categorical extent of a
// transposed coordinate.
func reorder(points []coord.Point) []coord.Point {
	return []coord.Point{points[3], points[0], points[1], points[2]}
}

func color(v Value, th *theme.Theme) string {
	if v.Color != "" {
		return v.Color
	}
	if th != nil {
		return th.DefaultColor
	}
	return ""
}

func sub(a, b coord.Point) coord.Point { return coord.Point{X: a.X - b.X, Y: a.Y - b.Y} }

func angle(p coord.Point) float64 { return math.Atan2(p.Y, p.X) }

// ColorRect renders an interval as a rectangle, or as an annular sector in
// polar coordinates. Style overrides take priority over encoded values; the
// "radius" key sets the sector corner radius.
func ColorRect(attr ColorAttribute, style primitive.Style) Renderer {
	return RendererFunc(func(points []coord.Point, v Value, c coord.Coordinate, th *theme.Theme) *primitive.Shape {
		if len(points) < 4 || c == nil {
			return degenerate(points).Apply(style)
		}
		col := color(v, th)
		if c.IsTransposed() {
			points = reorder(points)
		}
		p0, p1, p2, p3 := points[0], points[1], points[2], points[3]

		var s *primitive.Shape
		if !c.IsPolar() {
			x, y := p0.X, p0.Y
			d := sub(p2, p0)
			if d.X < 0 {
				x += d.X
			}
			if d.Y < 0 {
				y += d.Y
			}
			s = primitive.NewRect(x, y, math.Abs(d.X), math.Abs(d.Y))
		} else {
			s = polarSector(p0, p1, p3, v, c.Center(), style)
		}

		s.Style[primitive.StyleStroke] = col
		s.Style[string(attr)] = col
		if attr == ColorStroke {
			s.Style[primitive.StyleLineWidth] = 2.0
		}
		return s.Apply(style)
	})
}

func polarSector(p0, p1, p3 coord.Point, v Value, center coord.Point, style primitive.Style) *primitive.Shape {
	a1 := angle(sub(p0, center))
	a2 := angle(sub(p1, center))
	// Equal angles mean either an empty sweep or a full revolution; the
	// value ends tell them apart.
	if math.Abs(a2-a1) < angleEps {
		a2 = a1
		if v.Y != v.Y1 {
			a2 += tau
		}
	}
	end := a2
	if a2-a1 < 0 {
		end += tau
	}
	inner := coord.Distance(p3, center)
	outer := coord.Distance(p0, center)
	if inner > outer {
		inner, outer = outer, inner
	}
	radius, _ := style.Float(primitive.StyleRadius)
	sector := Sector{
		StartAngle:   a1,
		EndAngle:     end,
		InnerRadius:  inner,
		OuterRadius:  outer,
		CornerRadius: radius,
	}
	return primitive.NewPathShape(sector.Path(), center)
}

func degenerate(points []coord.Point) *primitive.Shape {
	var at coord.Point
	if len(points) > 0 {
		at = points[0]
	}
	return primitive.NewRect(at.X, at.Y, 0, 0)
}

func mid(a, b coord.Point) coord.Point {
	return coord.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Line renders a centre line from the baseline edge to the value edge.
func Line(style primitive.Style) Renderer {
	return RendererFunc(func(points []coord.Point, v Value, c coord.Coordinate, th *theme.Theme) *primitive.Shape {
		if len(points) < 4 {
			return degenerate(points).Apply(style)
		}
		from, to := mid(points[3], points[2]), mid(points[0], points[1])
		p := primitive.NewPath().MoveTo(from.X, from.Y).LineTo(to.X, to.Y)
		s := primitive.NewPathShape(p, coord.Point{})
		s.Style[primitive.StyleStroke] = color(v, th)
		s.Style[primitive.StyleLineWidth] = 1.0
		return s.Apply(style)
	})
}

// Tick renders an I-beam: both extent edges joined by a centre line.
func Tick(style primitive.Style) Renderer {
	return RendererFunc(func(points []coord.Point, v Value, c coord.Coordinate, th *theme.Theme) *primitive.Shape {
		if len(points) < 4 {
			return degenerate(points).Apply(style)
		}
		p0, p1, p2, p3 := points[0], points[1], points[2], points[3]
		from, to := mid(p3, p2), mid(p0, p1)
		p := primitive.NewPath().
			MoveTo(p0.X, p0.Y).LineTo(p1.X, p1.Y).
			MoveTo(p3.X, p3.Y).LineTo(p2.X, p2.Y).
			MoveTo(from.X, from.Y).LineTo(to.X, to.Y)
		s := primitive.NewPathShape(p, coord.Point{})
		s.Style[primitive.StyleStroke] = color(v, th)
		s.Style[primitive.StyleLineWidth] = 1.0
		return s.Apply(style)
	})
}
