package shape

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/core/theme"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

const tol = 1e-6

func near(a, b float64) bool { return math.Abs(a-b) < tol }

// quad returns normalized interval corners in p0..p3 order.
func quad(xMin, xMax, y0, y float64) []coord.Point {
	return []coord.Point{{X: xMin, Y: y}, {X: xMax, Y: y}, {X: xMax, Y: y0}, {X: xMin, Y: y0}}
}

func convert(c coord.Coordinate, pts []coord.Point) []coord.Point {
	out := make([]coord.Point, len(pts))
	for i, p := range pts {
		out[i] = c.Convert(p)
	}
	return out
}

func rectBox(t *testing.T, s *primitive.Shape) (x, y, w, h float64) {
	t.Helper()
	if s.Kind != primitive.KindRect {
		t.Fatalf("kind = %q, want rect", s.Kind)
	}
	x, _ = s.Style.Float(primitive.StyleX)
	y, _ = s.Style.Float(primitive.StyleY)
	w, _ = s.Style.Float(primitive.StyleWidth)
	h, _ = s.Style.Float(primitive.StyleHeight)
	return
}

func TestColorRectCartesian(t *testing.T) {
	c := coord.NewCartesian(coord.Point{X: 0, Y: 180}, coord.Point{X: 180, Y: 0})
	r := ColorRect(ColorFill, nil)

	tests := []struct {
		name       string
		pts        []coord.Point
		x, y, w, h float64
	}{
		{"positive", quad(5.0/12, 7.0/12, 0, 0.5), 75, 90, 30, 90},
		{"below baseline", quad(5.0/12, 7.0/12, 0.5, 0.2), 75, 90, 30, 54},
		{"zero height", quad(5.0/12, 7.0/12, 0, 0), 75, 180, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := r.Render(convert(c, tt.pts), Value{Color: "#ff0000"}, c, theme.Default())
			x, y, w, h := rectBox(t, s)
			if !near(x, tt.x) || !near(y, tt.y) || !near(w, tt.w) || !near(h, tt.h) {
				t.Errorf("rect = (%v,%v %vx%v), want (%v,%v %vx%v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
			if s.Style.String(primitive.StyleFill) != "#ff0000" {
				t.Errorf("fill = %v", s.Style[primitive.StyleFill])
			}
			if _, ok := s.Style[primitive.StyleLineWidth]; ok {
				t.Error("filled rect should not set lineWidth")
			}
		})
	}
}

func TestColorRectTransposedNegative(t *testing.T) {
	c := coord.NewCartesian(coord.Point{X: 0, Y: 180}, coord.Point{X: 180, Y: 0}).Transpose()
	pts := convert(c, quad(0.4, 0.6, 0.5, 0.2))

	s := ColorRect(ColorFill, nil).Render(pts, Value{}, c, theme.Default())
	x, y, w, h := rectBox(t, s)
	if !near(x, 36) || !near(y, 72) || !near(w, 54) || !near(h, 36) {
		t.Errorf("rect = (%v,%v %vx%v), want (36,72 54x36)", x, y, w, h)
	}
	if s.Style.String(primitive.StyleFill) != theme.Default().DefaultColor {
		t.Errorf("fill = %v, want theme default", s.Style[primitive.StyleFill])
	}
}

func TestHollowRect(t *testing.T) {
	c := coord.NewCartesian(coord.Point{X: 0, Y: 100}, coord.Point{X: 100, Y: 0})
	s := ColorRect(ColorStroke, nil).Render(convert(c, quad(0.2, 0.4, 0, 1)), Value{Color: "#00ff00"}, c, theme.Default())

	if s.Style.String(primitive.StyleStroke) != "#00ff00" {
		t.Errorf("stroke = %v", s.Style[primitive.StyleStroke])
	}
	if _, ok := s.Style[primitive.StyleFill]; ok {
		t.Error("hollow rect should not fill")
	}
	if lw, _ := s.Style.Float(primitive.StyleLineWidth); lw != 2 {
		t.Errorf("lineWidth = %v, want 2", lw)
	}
}

func TestStyleOverridesEncodedValues(t *testing.T) {
	c := coord.NewCartesian(coord.Point{X: 0, Y: 100}, coord.Point{X: 100, Y: 0})
	style := primitive.Style{primitive.StyleFill: "#000000", primitive.StyleOpacity: 0.5}
	s := ColorRect(ColorFill, style).Render(convert(c, quad(0.2, 0.4, 0, 1)), Value{Color: "#ff0000"}, c, theme.Default())

	if s.Style.String(primitive.StyleFill) != "#000000" {
		t.Errorf("fill = %v, want override", s.Style[primitive.StyleFill])
	}
	if s.Style.String(primitive.StyleStroke) != "#ff0000" {
		t.Errorf("stroke = %v, want encoded color", s.Style[primitive.StyleStroke])
	}
}

func TestColorRectDegenerate(t *testing.T) {
	c := coord.NewCartesian(coord.Point{X: 0, Y: 100}, coord.Point{X: 100, Y: 0})
	s := ColorRect(ColorFill, nil).Render(nil, Value{}, c, theme.Default())
	if b := s.BBox(); b.Width() != 0 || b.Height() != 0 {
		t.Errorf("degenerate bbox = %+v", b)
	}
}

func polarCoord() *coord.Polar {
	return coord.NewPolar(coord.Point{X: 0, Y: 200}, coord.Point{X: 200, Y: 0})
}

func TestPolarFullRevolution(t *testing.T) {
	c := polarCoord()
	pts := convert(c, quad(0, 1, 0, 1))

	s := ColorRect(ColorFill, nil).Render(pts, Value{Y: 1, Y1: 0}, c, theme.Default())
	if s.Kind != primitive.KindPath {
		t.Fatalf("kind = %q, want path", s.Kind)
	}
	if got := s.Style.String(primitive.StyleTransform); got != "translate(100, 100)" {
		t.Errorf("transform = %q", got)
	}
	b := s.BBox()
	if !near(b.Width(), 200) || !near(b.Height(), 200) {
		t.Errorf("full revolution bbox = %+v, want 200x200", b)
	}
	if n := strings.Count(s.Style.String(primitive.StylePath), "A"); n != 2 {
		t.Errorf("path has %d arc segments, want 2: %s", n, s.Style[primitive.StylePath])
	}
}

func TestPolarEmptySweep(t *testing.T) {
	c := polarCoord()
	pts := convert(c, quad(0, 1, 0, 1))

	// Equal angles with equal value ends collapse to nothing.
	s := ColorRect(ColorFill, nil).Render(pts, Value{Y: 1, Y1: 1}, c, theme.Default())
	if b := s.BBox(); b.Width() > tol {
		t.Errorf("empty sweep bbox = %+v, want zero width", b)
	}
}

func TestPolarHalf(t *testing.T) {
	c := polarCoord()
	pts := convert(c, quad(0, 0.5, 0, 1))

	s := ColorRect(ColorFill, nil).Render(pts, Value{Y: 1}, c, theme.Default())
	b := s.BBox()
	if !near(b.MinX, 100) || !near(b.MaxX, 200) || !near(b.Height(), 200) {
		t.Errorf("half sector bbox = %+v, want x in [100,200], height 200", b)
	}
}

func TestPolarTransposedSwapsRadii(t *testing.T) {
	c := polarCoord().Transpose()
	pts := convert(c, quad(0.1, 0.9, 0, 0.25))

	s := ColorRect(ColorFill, nil).Render(pts, Value{Y: 0.25, Y1: 0}, c, theme.Default())
	b := s.BBox()
	if !near(b.MinX, 100) || !near(b.MaxX, 190) || !near(b.MinY, 10) || !near(b.MaxY, 100) {
		t.Errorf("pie slice bbox = %+v, want [100,10]-[190,100]", b)
	}
}

func TestPolarCornerRadius(t *testing.T) {
	c := polarCoord()
	pts := convert(c, quad(0, 0.25, 0.2, 1))

	plain := ColorRect(ColorFill, nil).Render(pts, Value{Y: 1, Y1: 0.2}, c, theme.Default())
	rounded := ColorRect(ColorFill, primitive.Style{primitive.StyleRadius: 8.0}).Render(pts, Value{Y: 1, Y1: 0.2}, c, theme.Default())

	if plain.Path.Len() >= rounded.Path.Len() {
		t.Errorf("rounded path has %d commands, plain %d; want more", rounded.Path.Len(), plain.Path.Len())
	}
	pb, rb := plain.BBox(), rounded.BBox()
	if rb.Width() > pb.Width()+tol || rb.Height() > pb.Height()+tol {
		t.Errorf("rounded bbox %+v exceeds plain %+v", rb, pb)
	}
}

func TestLineAndTick(t *testing.T) {
	c := coord.NewCartesian(coord.Point{X: 0, Y: 100}, coord.Point{X: 100, Y: 0})
	pts := convert(c, quad(0.2, 0.4, 0, 0.5))

	line := Line(nil).Render(pts, Value{}, c, theme.Default())
	if got := line.Style.String(primitive.StylePath); got != "M30,100L30,50" {
		t.Errorf("line path = %q", got)
	}

	tick := Tick(nil).Render(pts, Value{}, c, theme.Default())
	b := tick.BBox()
	if !near(b.Width(), 20) || !near(b.Height(), 50) {
		t.Errorf("tick bbox = %+v, want 20x50", b)
	}
	if tick.Style.String(primitive.StyleStroke) == "" {
		t.Error("tick should be stroked")
	}
}

func TestSectorPlain(t *testing.T) {
	p := Sector{StartAngle: 0, EndAngle: math.Pi / 2, OuterRadius: 10}.Path()
	if got, want := p.D(), "M10,0A10,10,0,0,1,0,10L0,0Z"; got != want {
		t.Errorf("D() = %q, want %q", got, want)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	want := []string{NameHollowRect, NameLine, NameRect, NameTick}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := r.New("pyramid", nil); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("New(unknown) error = %v, want INVALID_SHAPE", err)
	}

	r.Register("custom", func(primitive.Style) Renderer { return Line(nil) })
	if !r.Has("custom") {
		t.Error("custom renderer not registered")
	}
}
