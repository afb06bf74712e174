package shape

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

const sectorEps = 1e-12

// Sector describes an annular sector centered on the origin. Angles are in
// radians with screen orientation: 0 points right and angles grow
// clockwise.
type Sector struct {
	StartAngle, EndAngle     float64
	InnerRadius, OuterRadius float64
	// CornerRadius rounds the four corners; it is reduced automatically
	// when the sector is too thin or too narrow to fit it.
	CornerRadius float64
}

// Path builds the sector outline relative to its center.
func (s Sector) Path() *primitive.Path {
	p := primitive.NewPath()
	r0, r1 := s.InnerRadius, s.OuterRadius
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	a0, a1 := s.StartAngle, s.EndAngle
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	if !(r1 > sectorEps) {
		return p.MoveTo(0, 0).Close()
	}

	if da > tau-sectorEps {
		p.MoveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.Arc(0, 0, r1, a0, a1, !cw)
		if r0 > sectorEps {
			p.MoveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.Arc(0, 0, r0, a1, a0, cw)
		}
		return p.Close()
	}

	rc := math.Min(math.Abs(r1-r0)/2, s.CornerRadius)
	rc0, rc1 := rc, rc

	x01, y01 := r1*math.Cos(a0), r1*math.Sin(a0)
	x10, y10 := r0*math.Cos(a1), r0*math.Sin(a1)
	x11, y11 := r1*math.Cos(a1), r1*math.Sin(a1)
	x00, y00 := r0*math.Cos(a0), r0*math.Sin(a0)

	if rc > sectorEps && da < math.Pi {
		if ox, oy, ok := intersect(x01, y01, x00, y00, x11, y11, x10, y10); ok {
			ax, ay := x01-ox, y01-oy
			bx, by := x11-ox, y11-oy
			kc := 1 / math.Sin(math.Acos((ax*bx+ay*by)/(math.Hypot(ax, ay)*math.Hypot(bx, by)))/2)
			lc := math.Hypot(ox, oy)
			rc0 = math.Min(rc, (r0-lc)/(kc-1))
			rc1 = math.Min(rc, (r1-lc)/(kc+1))
		} else {
			rc0, rc1 = 0, 0
		}
	}

	// Outer ring.
	switch {
	case !(da > sectorEps):
		p.MoveTo(x01, y01)
	case rc1 > sectorEps:
		t0 := cornerTangents(x00, y00, x01, y01, r1, rc1, cw)
		t1 := cornerTangents(x11, y11, x10, y10, r1, rc1, cw)
		p.MoveTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc1 < rc {
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r1, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), !cw)
			p.Arc(t1.cx, t1.cy, rc1, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}
	default:
		p.MoveTo(x01, y01)
		p.Arc(0, 0, r1, a0, a1, !cw)
	}

	// Inner ring, drawn backwards.
	switch {
	case !(r0 > sectorEps) || !(da > sectorEps):
		p.LineTo(x10, y10)
	case rc0 > sectorEps:
		t0 := cornerTangents(x10, y10, x11, y11, r0, -rc0, cw)
		t1 := cornerTangents(x01, y01, x00, y00, r0, -rc0, cw)
		p.LineTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc0 < rc {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r0, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), cw)
			p.Arc(t1.cx, t1.cy, rc0, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}
	default:
		p.Arc(0, 0, r0, a1, a0, cw)
	}

	return p.Close()
}

// intersect returns where line (x0,y0)-(x1,y1) crosses line (x2,y2)-(x3,y3).
func intersect(x0, y0, x1, y1, x2, y2, x3, y3 float64) (float64, float64, bool) {
	x10, y10 := x1-x0, y1-y0
	x32, y32 := x3-x2, y3-y2
	t := y32*x10 - x32*y10
	if t*t < sectorEps {
		return 0, 0, false
	}
	t = (x32*(y0-y2) - y32*(x0-x2)) / t
	return x0 + t*x10, y0 + t*y10, true
}

type tangent struct {
	cx, cy   float64
	x01, y01 float64
	x11, y11 float64
}

// cornerTangents computes the circle of radius rc tangent to the ring of
// radius r1 and to the radial edge from (x0,y0) to (x1,y1).
func cornerTangents(x0, y0, x1, y1, r1, rc float64, cw bool) tangent {
	x01, y01 := x0-x1, y0-y1
	lo := -rc
	if cw {
		lo = rc
	}
	lo /= math.Hypot(x01, y01)
	ox, oy := lo*y01, -lo*x01
	x11, y11 := x0+ox, y0+oy
	x10, y10 := x1+ox, y1+oy
	x00, y00 := (x11+x10)/2, (y11+y10)/2
	dx, dy := x10-x11, y10-y11
	d2 := dx*dx + dy*dy
	r := r1 - rc
	det := x11*y10 - x10*y11
	d := math.Sqrt(math.Max(0, r*r*d2-det*det))
	if dy < 0 {
		d = -d
	}
	cx0, cy0 := (det*dy-dx*d)/d2, (-det*dx-dy*d)/d2
	cx1, cy1 := (det*dy+dx*d)/d2, (-det*dx+dy*d)/d2
	dx0, dy0 := cx0-x00, cy0-y00
	dx1, dy1 := cx1-x00, cy1-y00
	if dx0*dx0+dy0*dy0 > dx1*dx1+dy1*dy1 {
		cx0, cy0 = cx1, cy1
	}
	return tangent{
		cx: cx0, cy: cy0,
		x01: -ox, y01: -oy,
		x11: cx0 * (r1/r - 1), y11: cy0 * (r1/r - 1),
	}
}
