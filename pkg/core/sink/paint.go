package sink

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

// paint is the resolved drawing state of one shape.
type paint struct {
	path      *primitive.Path
	offset    coord.Point
	fill      string
	stroke    string
	lineWidth float64
	opacity   float64
}

func resolve(s *primitive.Shape) paint {
	p := paint{
		fill:    s.Style.String(primitive.StyleFill),
		stroke:  s.Style.String(primitive.StyleStroke),
		opacity: 1,
	}
	if lw, ok := s.Style.Float(primitive.StyleLineWidth); ok {
		p.lineWidth = lw
	}
	if op, ok := s.Style.Float(primitive.StyleOpacity); ok {
		p.opacity = op
	}
	switch s.Kind {
	case primitive.KindRect:
		x, _ := s.Style.Float(primitive.StyleX)
		y, _ := s.Style.Float(primitive.StyleY)
		w, _ := s.Style.Float(primitive.StyleWidth)
		h, _ := s.Style.Float(primitive.StyleHeight)
		r, _ := s.Style.Float(primitive.StyleRadius)
		p.path = rectPath(x, y, w, h, r)
	case primitive.KindPath:
		p.path = s.Path
		p.offset = s.Offset
	}
	if p.path == nil {
		p.path = primitive.NewPath()
	}
	return p
}

// rectPath outlines a rectangle, rounding corners by r.
func rectPath(x, y, w, h, r float64) *primitive.Path {
	p := primitive.NewPath()
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
	}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0, false)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, false)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, false)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, false)
	return p.Close()
}

// parseColor returns the color for a hex string, or false when the string
// is empty, "none" or not a color.
func parseColor(s string) (colorful.Color, bool) {
	if s == "" || s == "none" {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	return c, err == nil
}
