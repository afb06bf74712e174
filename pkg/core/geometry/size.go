package geometry

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
)

// xCount returns the number of slots along x used for the default width.
func (e *Engine) xCount() int {
	xs := e.st.xScale
	if xs == nil {
		return 1
	}
	switch {
	case xs.IsCategory():
		return max(xs.Count(), 1)
	case xs.IsContinuous():
		var raw []any
		for _, row := range e.cfg.data {
			raw = append(raw, row[xs.Field])
		}
		values := xs.Distinct(raw)
		if len(values) < 2 {
			return 1
		}
		gap := math.Inf(1)
		for i := 1; i < len(values); i++ {
			gap = math.Min(gap, values[i]-values[i-1])
		}
		count := int(math.Round((xs.Max - xs.Min) / gap))
		return max(count, len(values))
	}
	return 1
}

// computeDefaultSize returns (1/count) times the theme ratio for the
// current coordinate.
func (e *Engine) computeDefaultSize() float64 {
	count := e.xCount()
	th := e.cfg.theme
	ratio := th.ColumnWidthRatio
	if c := e.cfg.coordinate; c.IsPolar() {
		if c.IsTransposed() && count > 1 {
			ratio = th.MultiplePieWidthRatio
		} else {
			ratio = th.RoseWidthRatio
		}
	}
	return 1 / float64(count) * ratio
}

// normalizedSize resolves the unclamped width of rec.
func (e *Engine) normalizedSize(rec *Record) float64 {
	px := e.cfg.size
	if rec != nil && rec.Size != nil {
		px = rec.Size
	}
	if px != nil {
		if l := coord.XDimensionLength(e.cfg.coordinate); l > 0 {
			return *px / l
		}
		return 0
	}
	if e.st.defaultSize == nil {
		size := e.computeDefaultSize()
		e.st.defaultSize = &size
	}
	return *e.st.defaultSize
}

// clampSize bounds a normalized width by the theme's pixel limits.
func (e *Engine) clampSize(size, xLen float64) float64 {
	if xLen <= 0 {
		return size
	}
	return e.cfg.theme.ClampWidth(size*xLen) / xLen
}
