// Package pipeline provides the chart rendering pipeline shared by the CLI
// and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a chart document, resolve its data and theme files, validate
//  2. Paint: build a geometry engine, run Initial and Paint
//  3. Render: serialize the painted shapes (SVG, PNG, JSON)
//
// Rendered artifacts are cached by document hash and render options, so
// repeated renders of an unchanged chart skip serialization.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ChartPath: "sales.toml",
//	    Formats:   []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/core/geometry"
)

// DefaultScale is the PNG pixel density.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// Options contains all configuration for the pipeline.
type Options struct {
	// ChartPath is read when Document is nil.
	ChartPath string `json:"chart_path,omitempty"`

	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Indent     bool     `json:"indent,omitempty"`
	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Document is an already decoded chart. It is resolved without file
	// access, so it must carry its data inline.
	Document *chart.Document `json:"-"`
	Logger   *log.Logger     `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Document *chart.Document
	// DocHash is the content hash of the resolved document.
	DocHash string
	// Engine is the painted engine; its container holds the shapes.
	Engine    *geometry.Engine
	Elements  []*geometry.Element
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Groups     int
	Shapes     int
	LoadTime   time.Duration
	PaintTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a chart source is given.
func (o *Options) ValidateForLoad() error {
	if o.ChartPath == "" && o.Document == nil {
		return fmt.Errorf("chart path or document is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return fmt.Errorf("invalid scale: %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(doc *chart.Document, format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		Width:      doc.Width,
		Height:     doc.Height,
		Background: o.Background,
	}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatJSON:
		k.Indent = o.Indent
	}
	return k
}
