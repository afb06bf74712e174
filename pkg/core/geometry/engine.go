package geometry

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/encode"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/core/scale"
	"github.com/matzehuels/chartgeom/pkg/core/shape"
	"github.com/matzehuels/chartgeom/pkg/core/theme"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// config is the persistent configuration. It survives Clear.
type config struct {
	data       []map[string]any
	position   encode.Position
	colorField string
	sizeField  string
	scaleDefs  map[string]*scale.Def
	size       *float64
	shapeName  string
	style      primitive.Style
	renderer   shape.Renderer
	coordinate coord.Coordinate
	theme      *theme.Theme
}

// state is derived from data by Initial and dropped by Clear.
type state struct {
	initialized bool
	xScale      *scale.Scale
	yScale      *scale.Scale
	colorScale  *scale.Scale
	records     []*Record
	groups      [][]*Record
	defaultSize *float64
	elements    []*Element
}

// Engine computes and paints interval geometry.
type Engine struct {
	cfg       config
	st        state
	container *primitive.Group
	registry  *shape.Registry
	logger    *log.Logger
	destroyed bool
}

// New returns an engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg: config{
			scaleDefs: make(map[string]*scale.Def),
			shapeName: shape.NameRect,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.coordinate == nil {
		e.cfg.coordinate = coord.NewCartesian(coord.Point{X: 0, Y: 1}, coord.Point{X: 1, Y: 0})
	}
	if e.cfg.theme == nil {
		e.cfg.theme = theme.Default()
	}
	if e.container == nil {
		e.container = primitive.NewGroup()
	}
	if e.registry == nil {
		e.registry = shape.Default
	}
	if e.logger == nil {
		e.logger = discardLogger()
	}
	if err := e.resolveRenderer(); err != nil {
		e.cfg.renderer = shape.ColorRect(shape.ColorFill, e.cfg.style)
	}
	return e
}

// resolveRenderer builds the renderer for the configured shape and style.
func (e *Engine) resolveRenderer() error {
	r, err := e.registry.New(e.cfg.shapeName, e.cfg.style)
	if err != nil {
		return err
	}
	e.cfg.renderer = r
	return nil
}

func (e *Engine) alive() {
	if e.destroyed {
		panic("geometry: engine used after Destroy")
	}
}

// Position binds the x and y channels from a shorthand such as "a*b".
func (e *Engine) Position(expr string) error {
	e.alive()
	pos, err := encode.ParsePosition(expr)
	if err != nil {
		return err
	}
	for _, f := range pos.Fields() {
		if err := errors.ValidateFieldName(f); err != nil {
			return err
		}
	}
	e.cfg.position = pos
	return nil
}

// Color binds the color channel to a field. An empty field unbinds it.
func (e *Engine) Color(field string) *Engine {
	e.alive()
	e.cfg.colorField = field
	return e
}

// SizeField binds per-record pixel widths to a numeric field.
func (e *Engine) SizeField(field string) *Engine {
	e.alive()
	e.cfg.sizeField = field
	return e
}

// Shape selects the renderer by registry name.
func (e *Engine) Shape(name string) error {
	e.alive()
	r, err := e.registry.New(name, e.cfg.style)
	if err != nil {
		return err
	}
	e.cfg.shapeName = name
	e.cfg.renderer = r
	return nil
}

// Style sets style overrides that take priority over encoded values.
func (e *Engine) Style(s primitive.Style) *Engine {
	e.alive()
	e.cfg.style = s
	if err := e.resolveRenderer(); err != nil {
		e.cfg.renderer = shape.ColorRect(shape.ColorFill, s)
	}
	return e
}

// Size sets an explicit width in pixels, or clears it when v is nil. An
// explicit width discards the computed default.
func (e *Engine) Size(v *float64) *Engine {
	e.alive()
	if v != nil {
		px := *v
		e.cfg.size = &px
		e.st.defaultSize = nil
	} else {
		e.cfg.size = nil
	}
	return e
}

// SetScaleDef sets or, with a nil def, removes the scale definition of a
// field. It takes effect on the next Initial.
func (e *Engine) SetScaleDef(field string, def *scale.Def) error {
	e.alive()
	if def == nil {
		delete(e.cfg.scaleDefs, field)
		return nil
	}
	if err := def.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScale, err, "scale for field %q", field)
	}
	e.cfg.scaleDefs[field] = def
	return nil
}

// SetCoordinate replaces the coordinate system.
func (e *Engine) SetCoordinate(c coord.Coordinate) {
	e.alive()
	e.cfg.coordinate = c
}

// SetTheme replaces the theme.
func (e *Engine) SetTheme(t *theme.Theme) {
	e.alive()
	e.cfg.theme = t
}

// UpdateData replaces the data rows and rebuilds derived state.
func (e *Engine) UpdateData(rows []map[string]any) {
	e.alive()
	e.cfg.data = rows
	e.Initial()
}

// Theme returns the theme in use.
func (e *Engine) Theme() *theme.Theme { return e.cfg.theme }

// Coordinate returns the coordinate system.
func (e *Engine) Coordinate() coord.Coordinate { return e.cfg.coordinate }

// Container returns the group shapes are painted into.
func (e *Engine) Container() *primitive.Group { return e.container }

// XScale returns the scale of the x channel.
func (e *Engine) XScale() *scale.Scale { return e.st.xScale }

// Elements returns the shapes of the last Paint.
func (e *Engine) Elements() []*Element { return e.st.elements }

// Groups returns the records split by color value.
func (e *Engine) Groups() [][]*Record { return e.st.groups }

// ScaleDef returns the scale definition of field, or nil.
func (e *Engine) ScaleDef(field string) *scale.Def { return e.cfg.scaleDefs[field] }

// Destroyed reports whether Destroy has been called.
func (e *Engine) Destroyed() bool { return e.destroyed }

// YScale returns the scale of the value channel after baseline adjustment.
func (e *Engine) YScale() *scale.Scale { return e.st.yScale }

// DefaultSize returns the computed normalized width, or nil when an
// explicit size is set or nothing has been computed.
func (e *Engine) DefaultSize() *float64 { return e.st.defaultSize }

// Initial builds scales, adjusts the y domain, resolves records and groups
// and computes the default width. Empty data yields no records. Rows whose
// x or y value is missing or outside the scale domain are skipped.
func (e *Engine) Initial() {
	e.alive()
	pos := e.cfg.position
	rows := e.cfg.data

	xs := make([]any, 0, len(rows))
	ys := make([]any, 0, len(rows))
	cs := make([]any, 0, len(rows))
	for _, row := range rows {
		if pos.X != "" {
			xs = append(xs, row[pos.X])
		}
		if pos.Y != "" {
			ys = append(ys, flatten(row[pos.Y])...)
		}
		if e.cfg.colorField != "" {
			cs = append(cs, row[e.cfg.colorField])
		}
	}

	e.st.xScale = scale.New(pos.X, xs, e.cfg.scaleDefs[pos.X])
	e.st.yScale = scale.New(pos.Y, ys, e.cfg.scaleDefs[pos.Y])
	e.st.colorScale = nil
	if e.cfg.colorField != "" {
		e.st.colorScale = scale.New(e.cfg.colorField, cs, &scale.Def{Type: scale.TypeCategory})
	}
	e.adjustXRange()
	e.adjustYScale()

	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		rec := e.newRecord(row)
		if !e.mappable(rec) {
			e.logger.Debug("skipping record without position", "row", row)
			continue
		}
		records = append(records, rec)
	}
	e.st.records = records
	e.st.groups = e.group(e.st.records)

	if e.cfg.size == nil {
		size := e.computeDefaultSize()
		e.st.defaultSize = &size
	} else {
		e.st.defaultSize = nil
	}
	e.st.initialized = true

	e.logger.Debug("interval initial",
		"records", len(e.st.records),
		"groups", len(e.st.groups),
		"x", e.st.xScale.Type,
		"y", e.st.yScale.Type)
}

// flatten expands range pairs into their ends.
func flatten(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	}
	return []any{v}
}

func (e *Engine) newRecord(row map[string]any) *Record {
	rec := &Record{Origin: row}
	pos := e.cfg.position
	if pos.X != "" {
		rec.X = e.st.xScale.Translate(row[pos.X])
	}
	if pos.Y != "" {
		vals := flatten(row[pos.Y])
		if len(vals) > 2 {
			vals = vals[:2]
		}
		for _, v := range vals {
			rec.Y = append(rec.Y, e.st.yScale.Translate(v))
		}
	}
	if cs := e.st.colorScale; cs != nil {
		if i := cs.Translate(row[e.cfg.colorField]); !math.IsNaN(i) {
			rec.Color = e.cfg.theme.Color(int(i))
		}
	}
	if e.cfg.sizeField != "" {
		if px, ok := scale.Number(row[e.cfg.sizeField]); ok {
			rec.Size = &px
		}
	}
	return rec
}

// mappable reports whether every bound position channel of rec translated
// to a number.
func (e *Engine) mappable(rec *Record) bool {
	pos := e.cfg.position
	if pos.X != "" && math.IsNaN(rec.X) {
		return false
	}
	if pos.Y == "" {
		return true
	}
	if len(rec.Y) == 0 {
		return false
	}
	for _, y := range rec.Y {
		if math.IsNaN(y) {
			return false
		}
	}
	return true
}

// group splits records by color value, in order of first appearance.
func (e *Engine) group(records []*Record) [][]*Record {
	if len(records) == 0 {
		return nil
	}
	if e.cfg.colorField == "" {
		return [][]*Record{records}
	}
	index := make(map[string]int)
	var groups [][]*Record
	for _, rec := range records {
		key := scale.Key(rec.Origin[e.cfg.colorField])
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], rec)
	}
	return groups
}

// adjustXRange applies the default category range when none was set.
func (e *Engine) adjustXRange() {
	xs := e.st.xScale
	if !xs.IsCategory() || e.cfg.scaleDefs[xs.Field].HasRange() {
		return
	}
	n := float64(xs.Count())
	if n <= 1 {
		return
	}
	c := e.cfg.coordinate
	switch {
	case c.IsPolar() && !c.IsTransposed():
		xs.SetRange(0, 1-1/n)
	case c.IsPolar():
		offset := 1 / n * e.cfg.theme.MultiplePieWidthRatio
		xs.SetRange(offset/2, 1-offset/2)
	default:
		xs.SetRange(1/(2*n), 1-1/(2*n))
	}
}

// adjustYScale keeps zero inside the y domain.
func (e *Engine) adjustYScale() {
	ys := e.st.yScale
	if ys.Type != scale.TypeLinear {
		return
	}
	c := e.cfg.coordinate
	if c.IsPolar() && c.IsTransposed() {
		ys.DisableNice()
		ys.SetMin(0)
		return
	}
	if ys.Min > 0 {
		ys.SetMin(0)
	}
	if ys.Max < 0 {
		ys.SetMax(0)
	}
}

// y0 returns the normalized baseline.
func (e *Engine) y0() float64 {
	ys := e.st.yScale
	if ys == nil || !ys.IsContinuous() {
		if ys == nil {
			return 0
		}
		return ys.Range[0]
	}
	var base float64
	switch {
	case ys.Min >= 0:
		base = ys.Min
	case ys.Max <= 0:
		base = ys.Max
	}
	return ys.Scale(base)
}

// CreateShapePointsCfg returns the normalized geometry input for rec. The
// width is not clamped here.
func (e *Engine) CreateShapePointsCfg(rec *Record) ShapePointsCfg {
	e.alive()
	if !e.st.initialized {
		e.Initial()
	}
	cfg := ShapePointsCfg{
		X:    e.st.xScale.Scale(rec.X),
		Y0:   e.y0(),
		Size: e.normalizedSize(rec),
	}
	for _, y := range rec.Y {
		cfg.Y = append(cfg.Y, e.st.yScale.Scale(y))
	}
	return cfg
}

// BeforeMapping computes the points of every record and links the lead
// record of each group to the lead record of the following group. Only
// the last group's lead record is left without NextPoints.
func (e *Engine) BeforeMapping(groups [][]*Record) {
	e.alive()
	for _, g := range groups {
		for _, rec := range g {
			rec.Points = RectPoints(e.CreateShapePointsCfg(rec))
			rec.NextPoints = nil
		}
	}
	linkNextPoints(groups)
}

func linkNextPoints(groups [][]*Record) {
	for i := 0; i+1 < len(groups); i++ {
		if len(groups[i]) == 0 || len(groups[i+1]) == 0 {
			continue
		}
		groups[i][0].NextPoints = groups[i+1][0].Points
	}
}

// Paint maps every record, renders one shape per record into the
// container and returns the painted elements. Shapes from a previous
// Paint are removed first.
func (e *Engine) Paint() []*Element {
	e.alive()
	if !e.st.initialized {
		e.Initial()
	}
	e.removeElements()
	e.BeforeMapping(e.st.groups)

	renderer := e.cfg.renderer
	c := e.cfg.coordinate
	xLen := coord.XDimensionLength(c)
	for gi, g := range e.st.groups {
		for ri, rec := range g {
			cfg := e.CreateShapePointsCfg(rec)
			cfg.Size = e.clampSize(cfg.Size, xLen)
			rec.Points = RectPoints(cfg)

			physical := make([]coord.Point, len(rec.Points))
			for i, p := range rec.Points {
				physical[i] = c.Convert(p)
			}
			lo, hi := cfg.Bounds()
			s := renderer.Render(physical, shape.Value{Y: hi, Y1: lo, Color: rec.Color}, c, e.cfg.theme)
			e.container.Add(s)
			e.st.elements = append(e.st.elements, &Element{
				ID:     elementID(fmt.Sprintf("%d/%d/%g/%v", gi, ri, rec.X, rec.Y)),
				Record: rec,
				Shape:  s,
			})
		}
	}
	linkNextPoints(e.st.groups)

	e.logger.Debug("interval paint", "shapes", len(e.st.elements), "shape", e.cfg.shapeName)
	return e.st.elements
}

func (e *Engine) removeElements() {
	for _, el := range e.st.elements {
		e.container.Remove(el.Shape)
	}
	e.st.elements = nil
}

// Clear removes painted shapes and drops data-derived state. Configuration,
// including an explicit size, is kept.
func (e *Engine) Clear() {
	e.alive()
	e.removeElements()
	e.container.Clear()
	e.st.records = nil
	e.st.groups = nil
	e.st.defaultSize = nil
	e.st.initialized = false
}

// Destroy clears the engine and destroys its container. Any later
// operation panics.
func (e *Engine) Destroy() {
	e.alive()
	e.Clear()
	e.container.Destroy()
	e.destroyed = true
}
