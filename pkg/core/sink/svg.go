package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	title      string
	ids        map[*primitive.Shape]string
}

func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }
func WithTitle(title string) SVGOption      { return func(r *svgRenderer) { r.title = title } }

// WithIDs attaches an id attribute to each listed shape.
func WithIDs(ids map[*primitive.Shape]string) SVGOption {
	return func(r *svgRenderer) { r.ids = ids }
}

// RenderSVG draws the group's shapes onto a width x height SVG document.
func RenderSVG(g *primitive.Group, width, height float64, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(int(width+0.5), int(height+0.5),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(width), num(height)))
	if r.title != "" {
		canvas.Title(r.title)
	}
	if _, ok := parseColor(r.background); ok {
		canvas.Rect(0, 0, int(width+0.5), int(height+0.5), "fill:"+r.background)
	}

	canvas.Group(`class="marks"`)
	for _, s := range g.Children() {
		r.renderShape(canvas, s)
	}
	canvas.Gend()
	canvas.End()
	return buf.Bytes()
}

func (r *svgRenderer) renderShape(canvas *svg.SVG, s *primitive.Shape) {
	p := resolve(s)
	attrs := []string{svgStyle(p)}
	if id, ok := r.ids[s]; ok {
		attrs = append(attrs, fmt.Sprintf(`id="%s"`, html.EscapeString(id)))
	}
	if t := s.Style.String(primitive.StyleTransform); t != "" {
		attrs = append(attrs, fmt.Sprintf(`transform="%s"`, t))
	}
	canvas.Path(p.path.D(), attrs...)
}

func svgStyle(p paint) string {
	var parts []string
	if _, ok := parseColor(p.fill); ok {
		parts = append(parts, "fill:"+p.fill)
	} else {
		parts = append(parts, "fill:none")
	}
	if _, ok := parseColor(p.stroke); ok && p.lineWidth > 0 {
		parts = append(parts, "stroke:"+p.stroke, "stroke-width:"+num(p.lineWidth))
	}
	if p.opacity < 1 {
		parts = append(parts, "opacity:"+num(p.opacity))
	}
	return strings.Join(parts, ";")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
