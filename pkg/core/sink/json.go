package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	ids    map[*primitive.Shape]string
	indent bool
}

// WithJSONIDs records element IDs next to each shape.
func WithJSONIDs(ids map[*primitive.Shape]string) JSONOption {
	return func(r *jsonRenderer) { r.ids = ids }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	ID    string          `json:"id,omitempty"`
	Kind  primitive.Kind  `json:"kind"`
	Style primitive.Style `json:"style"`
	BBox  jsonBBox        `json:"bbox"`
}

type jsonBBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON serializes the group's shapes with their bounds.
func RenderJSON(g *primitive.Group, width, height float64, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Width: width, Height: height, Shapes: make([]jsonShape, 0, g.Len())}
	for _, s := range g.Children() {
		b := s.BBox()
		out.Shapes = append(out.Shapes, jsonShape{
			ID:    r.ids[s],
			Kind:  s.Kind,
			Style: s.Style,
			BBox:  jsonBBox{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()},
		})
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
