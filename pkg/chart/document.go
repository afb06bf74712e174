package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartgeom/pkg/core/encode"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/core/scale"
	"github.com/matzehuels/chartgeom/pkg/core/shape"
	"github.com/matzehuels/chartgeom/pkg/core/theme"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Document defaults.
const (
	DefaultWidth   = 640.0
	DefaultHeight  = 480.0
	DefaultPadding = 40.0
)

// Format is a document serialization.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart file %q (want .toml or .json)", filepath.Base(path))
}

// Document is a declarative chart description.
type Document struct {
	Title   string   `toml:"title" json:"title,omitempty"`
	Width   float64  `toml:"width" json:"width,omitempty"`
	Height  float64  `toml:"height" json:"height,omitempty"`
	Padding *float64 `toml:"padding" json:"padding,omitempty"`

	Data   Data                  `toml:"data" json:"data"`
	Encode Encode                `toml:"encode" json:"encode"`
	Scales map[string]*scale.Def `toml:"scales" json:"scales,omitempty"`

	Coordinate Coordinate     `toml:"coordinate" json:"coordinate"`
	Shape      string         `toml:"shape" json:"shape,omitempty"`
	Size       *float64       `toml:"size" json:"size,omitempty"`
	Style      map[string]any `toml:"style" json:"style,omitempty"`

	// ThemeFile is a TOML theme relative to the document. Theme keys
	// are applied on top of it.
	ThemeFile string         `toml:"theme_file" json:"theme_file,omitempty"`
	Theme     map[string]any `toml:"theme" json:"theme,omitempty"`

	theme *theme.Theme
}

// Encode binds data fields to visual channels.
type Encode struct {
	// Position is the shorthand "x*y".
	Position string `toml:"position" json:"position"`
	Color    string `toml:"color" json:"color,omitempty"`
	// Size binds per-record pixel widths.
	Size string `toml:"size" json:"size,omitempty"`
}

// Decode parses a document without resolving file references.
func Decode(data []byte, format Format) (*Document, error) {
	var d Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &d)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse chart toml")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown chart keys: %s", strings.Join(names, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse chart json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
	d.SetDefaults()
	return &d, nil
}

// Load reads a document from disk, resolves file references relative to
// it and validates the result.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "chart file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read chart: %w", err)
	}
	d, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := d.Resolve(os.DirFS(filepath.Dir(path))); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// SetDefaults fills unset sizes and the shape name.
func (d *Document) SetDefaults() {
	if d.Width == 0 {
		d.Width = DefaultWidth
	}
	if d.Height == 0 {
		d.Height = DefaultHeight
	}
	if d.Padding == nil {
		p := DefaultPadding
		d.Padding = &p
	}
	if d.Shape == "" {
		d.Shape = shape.NameRect
	}
	if d.Coordinate.Type == "" {
		d.Coordinate.Type = CoordRect
	}
}

// Resolve loads the data and theme files the document references from
// fsys. A nil fsys rejects file references, which is how untrusted
// documents are handled.
func (d *Document) Resolve(fsys fs.FS) error {
	if d.Data.File != "" {
		rows, err := d.Data.load(fsys)
		if err != nil {
			return err
		}
		d.Data.Values = rows
		d.Data.File, d.Data.Format = "", ""
	}
	th, err := d.resolveTheme(fsys)
	if err != nil {
		return err
	}
	d.theme = th
	d.ThemeFile = ""
	return nil
}

func (d *Document) resolveTheme(fsys fs.FS) (*theme.Theme, error) {
	th := theme.Default()
	if d.ThemeFile != "" {
		data, err := readFile(fsys, d.ThemeFile)
		if err != nil {
			return nil, err
		}
		if th, err = theme.Decode(data); err != nil {
			return nil, err
		}
	}
	if len(d.Theme) > 0 {
		raw, err := json.Marshal(d.Theme)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "encode theme overrides")
		}
		if err := json.Unmarshal(raw, th); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme overrides")
		}
	}
	return th, nil
}

// ResolvedTheme returns the theme after file and inline overrides.
func (d *Document) ResolvedTheme() (*theme.Theme, error) {
	if d.theme != nil {
		return d.theme, nil
	}
	return d.resolveTheme(nil)
}

// Validate reports the first configuration problem of a resolved document.
func (d *Document) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must be positive, got %gx%g", d.Width, d.Height)
	}
	if p := d.padding(); p < 0 || 2*p >= d.Width || 2*p >= d.Height {
		return errors.New(errors.ErrCodeInvalidInput, "padding %g leaves no room in %gx%g", p, d.Width, d.Height)
	}
	if d.Data.File != "" || d.ThemeFile != "" {
		return errors.New(errors.ErrCodeInvalidInput, "document has unresolved file references")
	}

	if d.Encode.Position == "" {
		return errors.New(errors.ErrCodeInvalidEncoding, "encode.position is required")
	}
	pos, err := encode.ParsePosition(d.Encode.Position)
	if err != nil {
		return err
	}
	for _, f := range pos.Fields() {
		if err := errors.ValidateFieldName(f); err != nil {
			return err
		}
	}
	for _, f := range []string{d.Encode.Color, d.Encode.Size} {
		if f == "" {
			continue
		}
		if err := errors.ValidateFieldName(f); err != nil {
			return err
		}
	}

	for _, field := range sortedKeys(d.Scales) {
		def := d.Scales[field]
		if def == nil {
			continue
		}
		if err := def.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScale, err, "scale %q", field)
		}
	}

	if err := d.Coordinate.Validate(); err != nil {
		return err
	}
	if !shape.Default.Has(d.Shape) {
		return errors.New(errors.ErrCodeInvalidShape, "unknown shape %q (available: %v)", d.Shape, shape.Default.Names())
	}
	if d.Size != nil && *d.Size < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size must not be negative, got %g", *d.Size)
	}
	for _, key := range []string{primitive.StyleFill, primitive.StyleStroke} {
		if c, ok := d.Style[key].(string); ok && c != "" && c != "none" {
			if err := errors.ValidateColor(c); err != nil {
				return err
			}
		}
	}

	th, err := d.ResolvedTheme()
	if err != nil {
		return err
	}
	return th.Validate()
}

func (d *Document) padding() float64 {
	if d.Padding == nil {
		return DefaultPadding
	}
	return *d.Padding
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
