package primitive

import (
	"math"
	"strings"
)

const (
	tau        = 2 * math.Pi
	pathEps    = 1e-6
	tauEpsilon = tau - pathEps
)

// Verb is a path construction command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbArc
	VerbClose
)

func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbArc:
		return "Arc"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Command is one recorded path command. Arc commands use the center (X, Y),
// radius R, start and end angles A0 and A1, and the CCW direction flag.
type Command struct {
	Verb   Verb
	X, Y   float64
	R      float64
	A0, A1 float64
	CCW    bool
}

// Path records drawing commands with canvas semantics.
type Path struct {
	cmds []Command
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{cmds: make([]Command, 0, 8)}
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, Command{Verb: VerbMoveTo, X: x, Y: y})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, Command{Verb: VerbLineTo, X: x, Y: y})
	return p
}

// Arc adds a circular arc centered at (cx, cy). Like a canvas arc, it first
// connects the current point to the arc start with a straight line.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) *Path {
	p.cmds = append(p.cmds, Command{Verb: VerbArc, X: cx, Y: cy, R: math.Abs(r), A0: a0, A1: a1, CCW: ccw})
	return p
}

func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, Command{Verb: VerbClose})
	return p
}

// Commands returns the recorded commands.
func (p *Path) Commands() []Command { return p.cmds }

// Len returns the number of recorded commands.
func (p *Path) Len() int { return len(p.cmds) }

// Sweep returns the angular extent an arc command actually draws, after the
// canvas normalization of its start and end angles.
func (c Command) Sweep() float64 {
	da := c.A1 - c.A0
	if c.CCW {
		da = c.A0 - c.A1
	}
	if da < 0 {
		da = math.Mod(da, tau) + tau
	}
	return da
}

// D serializes the path as SVG path data.
func (p *Path) D() string {
	w := &pathWriter{}
	for _, c := range p.cmds {
		switch c.Verb {
		case VerbMoveTo:
			w.move(c.X, c.Y)
		case VerbLineTo:
			w.line(c.X, c.Y)
		case VerbArc:
			w.arc(c)
		case VerbClose:
			w.close()
		}
	}
	return w.sb.String()
}

// Bounds returns the bounding box of the drawn geometry.
func (p *Path) Bounds() BBox {
	b := EmptyBBox()
	for _, c := range p.cmds {
		switch c.Verb {
		case VerbMoveTo, VerbLineTo:
			b = b.UnionPoint(c.X, c.Y)
		case VerbArc:
			b = b.Union(arcBounds(c))
		}
	}
	if b.IsEmpty() {
		return BBox{}
	}
	return b
}

// arcBounds covers the arc endpoints and every axis extreme inside its sweep.
func arcBounds(c Command) BBox {
	start := c.A0
	sweep := c.Sweep()
	if c.CCW {
		start = c.A0 - sweep
	}
	b := EmptyBBox()
	add := func(a float64) {
		b = b.UnionPoint(c.X+c.R*math.Cos(a), c.Y+c.R*math.Sin(a))
	}
	add(start)
	add(start + sweep)
	if sweep >= tauEpsilon {
		sweep = tau
	}
	first := math.Ceil(start/(math.Pi/2)) * (math.Pi / 2)
	for a := first; a < start+sweep; a += math.Pi / 2 {
		add(a)
	}
	return b
}

type pathWriter struct {
	sb      strings.Builder
	started bool
	x, y    float64
	sx, sy  float64
}

func (w *pathWriter) cmd(op byte, vals ...float64) {
	w.sb.WriteByte(op)
	for i, v := range vals {
		if i > 0 {
			w.sb.WriteByte(',')
		}
		w.sb.WriteString(formatFloat(v))
	}
}

func (w *pathWriter) move(x, y float64) {
	w.cmd('M', x, y)
	w.started, w.x, w.y, w.sx, w.sy = true, x, y, x, y
}

func (w *pathWriter) line(x, y float64) {
	if !w.started {
		w.move(x, y)
		return
	}
	w.cmd('L', x, y)
	w.x, w.y = x, y
}

func (w *pathWriter) close() {
	if !w.started {
		return
	}
	w.sb.WriteByte('Z')
	w.x, w.y = w.sx, w.sy
}

func (w *pathWriter) arc(c Command) {
	dx, dy := c.R*math.Cos(c.A0), c.R*math.Sin(c.A0)
	x0, y0 := c.X+dx, c.Y+dy
	cw := 1.0
	if c.CCW {
		cw = 0
	}

	if !w.started {
		w.move(x0, y0)
	} else if math.Abs(w.x-x0) > pathEps || math.Abs(w.y-y0) > pathEps {
		w.line(x0, y0)
	}
	if c.R == 0 {
		return
	}

	da := c.Sweep()
	switch {
	case da > tauEpsilon:
		// A full circle needs two half arcs.
		w.cmd('A', c.R, c.R, 0, 1, cw, c.X-dx, c.Y-dy)
		w.cmd('A', c.R, c.R, 0, 1, cw, x0, y0)
		w.x, w.y = x0, y0
	case da > pathEps:
		large := 0.0
		if da >= math.Pi {
			large = 1
		}
		x1, y1 := c.X+c.R*math.Cos(c.A1), c.Y+c.R*math.Sin(c.A1)
		w.cmd('A', c.R, c.R, 0, large, cw, x1, y1)
		w.x, w.y = x1, y1
	}
}
