package chart

import (
	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/geometry"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
)

// CoordinateSystem returns the physical coordinate system of the document.
func (d *Document) CoordinateSystem() coord.Coordinate {
	return d.Coordinate.Build(d.Width, d.Height, d.padding())
}

// Build validates the document and returns an engine configured from it.
// Extra options are applied after the document's own, so callers may
// override the container, registry or logger.
func (d *Document) Build(opts ...geometry.Option) (*geometry.Engine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	th, err := d.ResolvedTheme()
	if err != nil {
		return nil, err
	}

	base := []geometry.Option{
		geometry.WithData(d.Data.Values),
		geometry.WithCoordinate(d.CoordinateSystem()),
		geometry.WithTheme(th),
		geometry.WithScaleDefs(d.Scales),
	}
	e := geometry.New(append(base, opts...)...)

	if err := e.Position(d.Encode.Position); err != nil {
		return nil, err
	}
	if err := e.Shape(d.Shape); err != nil {
		return nil, err
	}
	e.Color(d.Encode.Color).
		SizeField(d.Encode.Size).
		Style(primitive.Style(d.Style)).
		Size(d.Size)
	return e, nil
}
