package scale

import "github.com/matzehuels/chartgeom/pkg/errors"

// Type identifies how a scale maps its domain.
type Type string

const (
	TypeLinear   Type = "linear"
	TypeTime     Type = "time"
	TypeCategory Type = "cat"
	TypeIdentity Type = "identity"
)

// Def is a caller-supplied scale definition for one field. Zero values mean
// "derive from data".
type Def struct {
	Type   Type      `toml:"type" json:"type,omitempty"`
	Min    *float64  `toml:"min" json:"min,omitempty"`
	Max    *float64  `toml:"max" json:"max,omitempty"`
	Range  []float64 `toml:"range" json:"range,omitempty"`
	Values []string  `toml:"values" json:"values,omitempty"`
	Nice   bool      `toml:"nice" json:"nice,omitempty"`
}

// Validate checks the definition for configuration errors.
func (d *Def) Validate() error {
	if d == nil {
		return nil
	}
	switch d.Type {
	case "", TypeLinear, TypeTime, TypeCategory, TypeIdentity:
	default:
		return errors.New(errors.ErrCodeInvalidScale, "unknown scale type %q", d.Type)
	}
	if d.Range != nil && len(d.Range) != 2 {
		return errors.New(errors.ErrCodeInvalidScale, "range needs 2 values, got %d", len(d.Range))
	}
	if d.Min != nil && d.Max != nil && *d.Min > *d.Max {
		return errors.New(errors.ErrCodeInvalidScale, "min %g exceeds max %g", *d.Min, *d.Max)
	}
	return nil
}

// HasRange reports whether the definition sets an output range.
func (d *Def) HasRange() bool {
	return d != nil && len(d.Range) == 2
}

// Float returns a pointer to v, for building definitions inline.
func Float(v float64) *float64 { return &v }
