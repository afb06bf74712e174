package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/geometry"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

func testGroup() (*primitive.Group, *primitive.Shape, *primitive.Shape) {
	g := primitive.NewGroup()
	rect := primitive.NewRect(10, 10, 20, 30).Apply(primitive.Style{primitive.StyleFill: "#ff0000"})
	arc := primitive.NewPathShape(
		primitive.NewPath().MoveTo(0, 0).Arc(0, 0, 10, 0, math.Pi/2, false).Close(),
		coord.Point{X: 50, Y: 50},
	).Apply(primitive.Style{primitive.StyleStroke: "#0000ff", primitive.StyleLineWidth: 2.0})
	g.Add(rect)
	g.Add(arc)
	return g, rect, arc
}

func TestRenderSVG(t *testing.T) {
	g, rect, _ := testGroup()
	out := string(RenderSVG(g, 100, 80,
		WithBackground("#ffffff"),
		WithTitle("sales"),
		WithIDs(map[*primitive.Shape]string{rect: "el-1"}),
	))

	checks := []string{
		`<svg`,
		`viewBox="0 0 100 80"`,
		`<title>sales</title>`,
		`M10,10L30,10L30,40L10,40Z`,
		`fill:#ff0000`,
		`id="el-1"`,
		`transform="translate(50, 50)"`,
		`stroke:#0000ff;stroke-width:2`,
		`</svg>`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<path"); n != 2 {
		t.Errorf("SVG has %d paths, want 2", n)
	}
}

func TestSVGHollowShapeHasNoFill(t *testing.T) {
	g := primitive.NewGroup()
	g.Add(primitive.NewRect(0, 0, 5, 5).Apply(primitive.Style{primitive.StyleStroke: "#00ff00", primitive.StyleLineWidth: 2.0}))
	out := string(RenderSVG(g, 10, 10))
	if !strings.Contains(out, "fill:none") {
		t.Errorf("hollow shape should not be filled:\n%s", out)
	}
}

func TestRoundedRectPath(t *testing.T) {
	p := rectPath(0, 0, 20, 10, 4)
	arcs := 0
	for _, c := range p.Commands() {
		if c.Verb == primitive.VerbArc {
			arcs++
		}
	}
	if arcs != 4 {
		t.Errorf("rounded rect has %d arcs, want 4", arcs)
	}
	b := p.Bounds()
	if math.Abs(b.Width()-20) > 1e-9 || math.Abs(b.Height()-10) > 1e-9 {
		t.Errorf("rounded rect bounds = %+v", b)
	}
}

func TestRenderPNG(t *testing.T) {
	g, _, _ := testGroup()
	data, err := RenderPNG(g, 100, 80, WithScale(1), WithPNGBackground("#ffffff"))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("image size = %dx%d, want 100x80", b.Dx(), b.Dy())
	}

	r, gr, b, _ := img.At(20, 25).RGBA()
	if r>>8 < 200 || gr>>8 > 50 || b>>8 > 50 {
		t.Errorf("pixel inside rect = (%d,%d,%d), want red", r>>8, gr>>8, b>>8)
	}
	r, gr, b, _ = img.At(90, 5).RGBA()
	if r>>8 < 250 || gr>>8 < 250 || b>>8 < 250 {
		t.Errorf("background pixel = (%d,%d,%d), want white", r>>8, gr>>8, b>>8)
	}
}

func TestRenderPNGScale(t *testing.T) {
	g, _, _ := testGroup()
	data, err := RenderPNG(g, 50, 40)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("2x image size = %dx%d, want 100x80", b.Dx(), b.Dy())
	}

	if _, err := RenderPNG(g, 0, 10); err == nil {
		t.Error("zero width should fail")
	}
}

func TestRenderJSON(t *testing.T) {
	g, rect, _ := testGroup()
	data, err := RenderJSON(g, 100, 80, WithJSONIDs(map[*primitive.Shape]string{rect: "el-1"}), WithJSONIndent())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		Width  float64 `json:"width"`
		Shapes []struct {
			ID   string `json:"id"`
			Kind string `json:"kind"`
			BBox struct {
				X, Y, Width, Height float64
			} `json:"bbox"`
		} `json:"shapes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Width != 100 || len(out.Shapes) != 2 {
		t.Fatalf("got width %v with %d shapes", out.Width, len(out.Shapes))
	}
	s := out.Shapes[0]
	if s.ID != "el-1" || s.Kind != "rect" || s.BBox.Width != 20 || s.BBox.Height != 30 {
		t.Errorf("first shape = %+v", s)
	}
	if out.Shapes[1].Kind != "path" || out.Shapes[1].ID != "" {
		t.Errorf("second shape = %+v", out.Shapes[1])
	}
}

func TestRenderJSONWithMissingValue(t *testing.T) {
	e := geometry.New(
		geometry.WithData([]map[string]any{
			{"genre": "Sports", "sold": 275},
			{"genre": "Strategy", "sold": nil},
			{"genre": "Action", "sold": 120},
		}),
		geometry.WithCoordinate(coord.NewCartesian(coord.Point{X: 0, Y: 80}, coord.Point{X: 100, Y: 0})),
	)
	if err := e.Position("genre*sold"); err != nil {
		t.Fatal(err)
	}
	e.Paint()

	data, err := RenderJSON(e.Container(), 100, 80)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	var out struct {
		Shapes []json.RawMessage `json:"shapes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Shapes) != 2 {
		t.Errorf("got %d shapes, want 2", len(out.Shapes))
	}
	if svg := string(RenderSVG(e.Container(), 100, 80)); strings.Contains(svg, "NaN") {
		t.Error("SVG output contains NaN")
	}
}
