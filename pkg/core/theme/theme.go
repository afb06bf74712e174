// Package theme holds the read-only visual defaults consulted while shapes
// are sized and rendered.
//
// A [Theme] is injected into the geometry engine and passed to every shape
// renderer. Themes are loaded from TOML documents merged over [Default]:
//
//	default_color = "#5B8FF9"
//	column_width_ratio = 0.5
//	min_column_width = 4
//	max_column_width = 48
package theme

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Width ratios applied to the per-category slot when no explicit size is set.
const (
	DefaultColumnWidthRatio      = 1.0 / 2
	DefaultRoseWidthRatio        = 0.9999999
	DefaultMultiplePieWidthRatio = 1 / 1.3
)

// Theme carries the visual defaults for interval shapes.
type Theme struct {
	DefaultColor string   `toml:"default_color" json:"default_color"`
	Background   string   `toml:"background" json:"background,omitempty"`
	Palette      []string `toml:"palette" json:"palette,omitempty"`

	ColumnWidthRatio      float64 `toml:"column_width_ratio" json:"column_width_ratio"`
	RoseWidthRatio        float64 `toml:"rose_width_ratio" json:"rose_width_ratio"`
	MultiplePieWidthRatio float64 `toml:"multiple_pie_width_ratio" json:"multiple_pie_width_ratio"`

	// MinColumnWidth and MaxColumnWidth bound shape widths in pixels.
	// Nil means unbounded.
	MinColumnWidth *float64 `toml:"min_column_width" json:"min_column_width,omitempty"`
	MaxColumnWidth *float64 `toml:"max_column_width" json:"max_column_width,omitempty"`
}

// Default returns a new theme with the stock colors and ratios.
func Default() *Theme {
	return &Theme{
		DefaultColor: "#5B8FF9",
		Background:   "#FFFFFF",
		Palette: []string{
			"#5B8FF9", "#5AD8A6", "#5D7092", "#F6BD16", "#E8684A",
			"#6DC8EC", "#9270CA", "#FF9D4D", "#269A99", "#FF99C3",
		},
		ColumnWidthRatio:      DefaultColumnWidthRatio,
		RoseWidthRatio:        DefaultRoseWidthRatio,
		MultiplePieWidthRatio: DefaultMultiplePieWidthRatio,
	}
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	out := *t
	out.Palette = append([]string(nil), t.Palette...)
	if t.MinColumnWidth != nil {
		v := *t.MinColumnWidth
		out.MinColumnWidth = &v
	}
	if t.MaxColumnWidth != nil {
		v := *t.MaxColumnWidth
		out.MaxColumnWidth = &v
	}
	return &out
}

// Validate reports configuration errors: unparsable colors, non-positive
// ratios and a min column width above the max column width.
func (t *Theme) Validate() error {
	if err := errors.ValidateColor(t.DefaultColor); err != nil {
		return err
	}
	if t.Background != "" {
		if err := errors.ValidateColor(t.Background); err != nil {
			return err
		}
	}
	for _, c := range t.Palette {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	ratios := []struct {
		name string
		v    float64
	}{
		{"column_width_ratio", t.ColumnWidthRatio},
		{"rose_width_ratio", t.RoseWidthRatio},
		{"multiple_pie_width_ratio", t.MultiplePieWidthRatio},
	}
	for _, r := range ratios {
		if !(r.v > 0 && r.v <= 1) {
			return errors.New(errors.ErrCodeInvalidTheme, "%s must be in (0, 1], got %g", r.name, r.v)
		}
	}
	if t.MinColumnWidth != nil && *t.MinColumnWidth < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "min_column_width must be non-negative")
	}
	if t.MaxColumnWidth != nil && *t.MaxColumnWidth < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "max_column_width must be non-negative")
	}
	if t.MinColumnWidth != nil && t.MaxColumnWidth != nil && *t.MinColumnWidth > *t.MaxColumnWidth {
		return errors.New(errors.ErrCodeInvalidTheme,
			"min_column_width %g exceeds max_column_width %g", *t.MinColumnWidth, *t.MaxColumnWidth)
	}
	return nil
}

// ClampWidth bounds a pixel width by the min then max column widths.
func (t *Theme) ClampWidth(w float64) float64 {
	if t.MinColumnWidth != nil {
		w = math.Max(w, *t.MinColumnWidth)
	}
	if t.MaxColumnWidth != nil {
		w = math.Min(w, *t.MaxColumnWidth)
	}
	return w
}

// Color returns the palette color for the i-th category, extending the
// palette with evenly spaced hues when i runs past its end.
func (t *Theme) Color(i int) string {
	if i < 0 {
		return t.DefaultColor
	}
	if i < len(t.Palette) {
		return t.Palette[i]
	}
	return Palette(i + 1)[i]
}

// Palette generates n perceptually spaced colors.
func Palette(n int) []string {
	out := make([]string, n)
	for i := range out {
		h := math.Mod(float64(i)*137.508, 360)
		out[i] = colorful.Hcl(h, 0.6, 0.65).Clamped().Hex()
	}
	return out
}

// Decode parses a TOML theme document merged over [Default].
func Decode(data []byte) (*Theme, error) {
	t := Default()
	if _, err := toml.Decode(string(data), t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode theme")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a TOML theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
		}
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Decode(data)
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
