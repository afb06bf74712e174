package primitive

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
)

// Kind identifies the geometry of a shape.
type Kind string

const (
	KindRect Kind = "rect"
	KindPath Kind = "path"
)

// Style keys shared by renderers and sinks.
const (
	StyleFill      = "fill"
	StyleStroke    = "stroke"
	StyleLineWidth = "lineWidth"
	StyleX         = "x"
	StyleY         = "y"
	StyleWidth     = "width"
	StyleHeight    = "height"
	StylePath      = "path"
	StyleTransform = "transform"
	StyleRadius    = "radius"
	StyleOpacity   = "opacity"
)

// Style is a set of visual attributes keyed by name.
type Style map[string]any

// Merge returns base overlaid with override. Keys in override win.
func Merge(base, override Style) Style {
	out := make(Style, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Float returns the numeric value stored under key.
func (s Style) Float(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// String returns the string value stored under key.
func (s Style) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Shape is a drawable primitive.
type Shape struct {
	Kind  Kind
	Style Style
	// Path holds the geometry of path shapes, relative to Offset.
	Path   *Path
	Offset coord.Point
}

// NewRect returns a rectangle shape with the given geometry.
func NewRect(x, y, w, h float64) *Shape {
	return &Shape{
		Kind: KindRect,
		Style: Style{
			StyleX: x, StyleY: y,
			StyleWidth: w, StyleHeight: h,
		},
	}
}

// NewPathShape returns a path shape translated by offset.
func NewPathShape(p *Path, offset coord.Point) *Shape {
	s := &Shape{
		Kind:   KindPath,
		Style:  Style{StylePath: p.D()},
		Path:   p,
		Offset: offset,
	}
	if offset != (coord.Point{}) {
		s.Style[StyleTransform] = Translate(offset)
	}
	return s
}

// Translate formats a translation transform attribute.
func Translate(p coord.Point) string {
	return fmt.Sprintf("translate(%s, %s)", formatFloat(p.X), formatFloat(p.Y))
}

// Apply overlays style onto the shape and returns the shape.
func (s *Shape) Apply(style Style) *Shape {
	s.Style = Merge(s.Style, style)
	return s
}

// BBox returns the shape's bounds in physical space.
func (s *Shape) BBox() BBox {
	switch s.Kind {
	case KindRect:
		x, _ := s.Style.Float(StyleX)
		y, _ := s.Style.Float(StyleY)
		w, _ := s.Style.Float(StyleWidth)
		h, _ := s.Style.Float(StyleHeight)
		return BBox{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
	case KindPath:
		if s.Path == nil {
			return BBox{}
		}
		return s.Path.Bounds().Translate(s.Offset)
	}
	return BBox{}
}

// String returns a compact description used in logs and the inspector.
func (s *Shape) String() string {
	b := s.BBox()
	var sb strings.Builder
	sb.WriteString(string(s.Kind))
	fmt.Fprintf(&sb, "[%.1f,%.1f %.1fx%.1f]", b.MinX, b.MinY, b.Width(), b.Height())
	if c := s.Style.String(StyleFill); c != "" {
		sb.WriteString(" fill=" + c)
	} else if c := s.Style.String(StyleStroke); c != "" {
		sb.WriteString(" stroke=" + c)
	}
	return sb.String()
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBBox returns a box that any union replaces.
func EmptyBBox() BBox {
	return BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

func (b BBox) IsEmpty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

func (b BBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

func (b BBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// UnionPoint grows the box to include (x, y).
func (b BBox) UnionPoint(x, y float64) BBox {
	return BBox{
		MinX: math.Min(b.MinX, x), MinY: math.Min(b.MinY, y),
		MaxX: math.Max(b.MaxX, x), MaxY: math.Max(b.MaxY, y),
	}
}

// Union grows the box to include o.
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	return b.UnionPoint(o.MinX, o.MinY).UnionPoint(o.MaxX, o.MaxY)
}

// Translate shifts the box by p.
func (b BBox) Translate(p coord.Point) BBox {
	if b.IsEmpty() {
		return b
	}
	return BBox{MinX: b.MinX + p.X, MinY: b.MinY + p.Y, MaxX: b.MaxX + p.X, MaxY: b.MaxY + p.Y}
}

func formatFloat(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
