package scale

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/scale"
)

// niceTicks is the tick budget used when rounding a domain to nice values.
const niceTicks = 5

// Scale maps one field's values onto a normalized output range.
type Scale struct {
	Field string
	Type  Type

	// Min and Max bound continuous domains (milliseconds for time).
	Min, Max float64
	// Values is the ordered category domain.
	Values []string
	Range  [2]float64
	Nice   bool

	pinMin, pinMax bool
	index          map[string]int
}

// New builds a scale for field from the raw data values, applying def when
// it is non-nil.
func New(field string, values []any, def *Def) *Scale {
	s := &Scale{Field: field, Range: [2]float64{0, 1}}
	if def != nil && def.Type != "" {
		s.Type = def.Type
	} else {
		s.Type = infer(values)
	}
	if def.HasRange() {
		s.Range = [2]float64{def.Range[0], def.Range[1]}
	}

	switch s.Type {
	case TypeCategory:
		s.initCategory(values, def)
	case TypeLinear, TypeTime:
		s.initContinuous(values, def)
	}
	return s
}

func (s *Scale) initCategory(values []any, def *Def) {
	s.index = make(map[string]int)
	add := func(k string) {
		if _, ok := s.index[k]; !ok {
			s.index[k] = len(s.Values)
			s.Values = append(s.Values, k)
		}
	}
	if def != nil {
		for _, v := range def.Values {
			add(v)
		}
	}
	for _, v := range values {
		if v != nil {
			add(Key(v))
		}
	}
}

func (s *Scale) initContinuous(values []any, def *Def) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		f, ok := s.number(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		min = math.Min(min, f)
		max = math.Max(max, f)
	}
	if math.IsInf(min, 1) {
		min, max = 0, 0
	}
	if def != nil {
		s.Nice = def.Nice
		if def.Min != nil {
			min, s.pinMin = *def.Min, true
		}
		if def.Max != nil {
			max, s.pinMax = *def.Max, true
		}
	}
	s.Min, s.Max = min, max
	s.nice()
}

// number converts v for a continuous scale. Range bar pairs are flattened
// by the caller.
func (s *Scale) number(v any) (float64, bool) {
	if s.Type == TypeTime {
		if t, ok := Timestamp(v); ok {
			return t, true
		}
	}
	return Number(v)
}

// Pinned reports whether the caller fixed the min and max bounds.
func (s *Scale) Pinned() (min, max bool) { return s.pinMin, s.pinMax }

// SetMin moves an unpinned lower bound. Pinned bounds are left unchanged.
func (s *Scale) SetMin(v float64) {
	if s.pinMin {
		return
	}
	s.Min = v
	s.nice()
}

// SetMax moves an unpinned upper bound. Pinned bounds are left unchanged.
func (s *Scale) SetMax(v float64) {
	if s.pinMax {
		return
	}
	s.Max = v
	s.nice()
}

// SetRange replaces the output range.
func (s *Scale) SetRange(lo, hi float64) { s.Range = [2]float64{lo, hi} }

// DisableNice turns off nice rounding for future bound changes.
func (s *Scale) DisableNice() { s.Nice = false }

func (s *Scale) nice() {
	if !s.Nice || s.Type != TypeLinear || s.Min >= s.Max {
		return
	}
	ls := scale.Linear{Min: s.Min, Max: s.Max}
	ls.Nice(scale.TickOptions{Max: niceTicks})
	if !s.pinMin {
		s.Min = ls.Min
	}
	if !s.pinMax {
		s.Max = ls.Max
	}
}

func (s *Scale) IsCategory() bool   { return s.Type == TypeCategory }
func (s *Scale) IsTime() bool       { return s.Type == TypeTime }
func (s *Scale) IsIdentity() bool   { return s.Type == TypeIdentity }
func (s *Scale) IsContinuous() bool { return s.Type == TypeLinear || s.Type == TypeTime }

// Count returns the number of categories, or zero for other types.
func (s *Scale) Count() int { return len(s.Values) }

// Translate converts a raw data value into the scale's numeric space:
// category index, Unix milliseconds, or the number itself. Values outside a
// category domain translate to NaN.
func (s *Scale) Translate(v any) float64 {
	switch s.Type {
	case TypeCategory:
		if i, ok := s.index[Key(v)]; ok {
			return float64(i)
		}
		if f, ok := Number(v); ok && f >= 0 && int(f) < len(s.Values) && f == math.Trunc(f) {
			return f
		}
		return math.NaN()
	case TypeLinear, TypeTime:
		if f, ok := s.number(v); ok {
			return f
		}
		return math.NaN()
	}
	return 0
}

// Scale maps a translated value into the output range.
func (s *Scale) Scale(v float64) float64 {
	return s.lerp(s.ratio(v))
}

// Map translates and scales a raw value.
func (s *Scale) Map(v any) float64 {
	return s.Scale(s.Translate(v))
}

func (s *Scale) ratio(v float64) float64 {
	switch s.Type {
	case TypeCategory:
		n := len(s.Values)
		if n <= 1 {
			return 0.5
		}
		return v / float64(n-1)
	case TypeLinear, TypeTime:
		if s.Max == s.Min {
			return 0
		}
		return scale.Linear{Min: s.Min, Max: s.Max}.Map(v)
	}
	return 0
}

func (s *Scale) lerp(t float64) float64 {
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Ticks returns up to n tick positions in the translated domain.
func (s *Scale) Ticks(n int) []float64 {
	switch s.Type {
	case TypeCategory:
		ticks := make([]float64, len(s.Values))
		for i := range ticks {
			ticks[i] = float64(i)
		}
		return ticks
	case TypeLinear, TypeTime:
		if s.Min >= s.Max || n < 1 {
			return []float64{s.Min}
		}
		major, _ := scale.Linear{Min: s.Min, Max: s.Max}.Ticks(scale.TickOptions{Max: n})
		return major
	}
	return nil
}

// Distinct returns the sorted distinct translated values of data.
func (s *Scale) Distinct(values []any) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f := s.Translate(v); !math.IsNaN(f) {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
