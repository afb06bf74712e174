package primitive

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
)

func TestMergeOverrideWins(t *testing.T) {
	base := Style{StyleFill: "#5B8FF9", StyleStroke: "#5B8FF9"}
	got := Merge(base, Style{StyleFill: "red", StyleRadius: 4.0})

	if got.String(StyleFill) != "red" {
		t.Errorf("fill = %v, want red", got[StyleFill])
	}
	if got.String(StyleStroke) != "#5B8FF9" {
		t.Errorf("stroke = %v, want base value", got[StyleStroke])
	}
	if r, _ := got.Float(StyleRadius); r != 4 {
		t.Errorf("radius = %v, want 4", r)
	}
	if base.String(StyleFill) != "#5B8FF9" {
		t.Error("Merge mutated base")
	}
}

func TestPathD(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want string
	}{
		{
			name: "polyline",
			path: NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 5).Close(),
			want: "M0,0L10,0L10,5Z",
		},
		{
			name: "quarter arc",
			path: NewPath().Arc(0, 0, 10, 0, math.Pi/2, false),
			want: "M10,0A10,10,0,0,1,0,10",
		},
		{
			name: "counter clockwise arc",
			path: NewPath().Arc(0, 0, 10, math.Pi/2, 0, true),
			want: "M0,10A10,10,0,0,0,10,0",
		},
		{
			name: "full circle",
			path: NewPath().Arc(0, 0, 5, 0, 2*math.Pi, false),
			want: "M5,0A5,5,0,1,1,-5,0A5,5,0,1,1,5,0",
		},
		{
			name: "arc joins current point",
			path: NewPath().MoveTo(0, 0).Arc(0, 0, 10, 0, math.Pi, false),
			want: "M0,0L10,0A10,10,0,1,1,-10,0",
		},
		{
			name: "zero radius",
			path: NewPath().MoveTo(1, 1).Arc(0, 0, 0, 0, 1, false),
			want: "M1,1L0,0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.D(); got != tt.want {
				t.Errorf("D() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArcSweepNormalization(t *testing.T) {
	c := Command{Verb: VerbArc, A0: 1, A1: 0.5}
	if got, want := c.Sweep(), 2*math.Pi-0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("Sweep() = %v, want %v", got, want)
	}
}

func TestPathBounds(t *testing.T) {
	b := NewPath().Arc(0, 0, 10, 0, math.Pi/2, false).Bounds()
	if math.Abs(b.MinX) > 1e-9 || b.MinY != 0 || b.MaxX != 10 || math.Abs(b.MaxY-10) > 1e-9 {
		t.Errorf("quarter arc bounds = %+v", b)
	}

	full := NewPath().Arc(5, 5, 5, 0.3, 0.3+2*math.Pi, false).Bounds()
	if math.Abs(full.Width()-10) > 1e-9 || math.Abs(full.Height()-10) > 1e-9 {
		t.Errorf("circle bounds = %+v", full)
	}

	if got := NewPath().Bounds(); got != (BBox{}) {
		t.Errorf("empty path bounds = %+v", got)
	}
}

func TestShapeBBox(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	b := r.BBox()
	if b.Width() != 30 || b.Height() != 40 || b.MinX != 10 || b.MinY != 20 {
		t.Errorf("rect bbox = %+v", b)
	}

	p := NewPathShape(NewPath().MoveTo(0, 0).LineTo(10, 10), coord.Point{X: 100, Y: 50})
	pb := p.BBox()
	if pb.MinX != 100 || pb.MinY != 50 || pb.Width() != 10 {
		t.Errorf("path bbox = %+v", pb)
	}
	if got := p.Style.String(StyleTransform); got != "translate(100, 50)" {
		t.Errorf("transform = %q", got)
	}
}

func TestGroupLifecycle(t *testing.T) {
	g := NewGroup()
	a, b := NewRect(0, 0, 1, 1), NewRect(2, 2, 1, 1)
	g.Add(a)
	g.Add(b)
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	if bb := g.BBox(); bb.Width() != 3 || bb.Height() != 3 {
		t.Errorf("group bbox = %+v", bb)
	}
	if !g.Remove(a) || g.Remove(a) {
		t.Error("Remove should succeed once")
	}
	g.Clear()
	if g.Len() != 0 {
		t.Errorf("Len() after Clear = %d", g.Len())
	}

	g.Add(a)
	g.Destroy()
	if !g.Destroyed() || g.Len() != 0 {
		t.Error("Destroy should empty and mark the group")
	}

	defer func() {
		if recover() == nil {
			t.Error("Add after Destroy should panic")
		}
	}()
	g.Add(b)
}

func ExamplePath_D() {
	p := NewPath().MoveTo(0, 0).LineTo(20, 0).LineTo(20, 10).LineTo(0, 10).Close()
	fmt.Println(p.D())
	// Output: M0,0L20,0L20,10L0,10Z
}
