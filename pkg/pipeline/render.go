package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/core/geometry"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/core/sink"
	"github.com/matzehuels/chartgeom/pkg/observability"
)

// Render serializes the shapes painted by engine in the requested formats.
func Render(ctx context.Context, engine *geometry.Engine, doc *chart.Document, opts Options) (artifacts map[string][]byte, err error) {
	opts.SetRenderDefaults()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	group := engine.Container()
	ids := ElementIDs(engine.Elements())
	background := opts.Background
	if background == "" {
		background = engine.Theme().Background
	}

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var rerr error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(group, doc.Width, doc.Height,
				sink.WithBackground(background),
				sink.WithTitle(doc.Title),
				sink.WithIDs(ids))
		case FormatPNG:
			data, rerr = sink.RenderPNG(group, doc.Width, doc.Height,
				sink.WithPNGBackground(background),
				sink.WithScale(opts.Scale))
		case FormatJSON:
			jsonOpts := []sink.JSONOption{sink.WithJSONIDs(ids)}
			if opts.Indent {
				jsonOpts = append(jsonOpts, sink.WithJSONIndent())
			}
			data, rerr = sink.RenderJSON(group, doc.Width, doc.Height, jsonOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if rerr != nil {
			return nil, fmt.Errorf("render %s: %w", format, rerr)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// ElementIDs maps each painted shape to its element ID.
func ElementIDs(elements []*geometry.Element) map[*primitive.Shape]string {
	ids := make(map[*primitive.Shape]string, len(elements))
	for _, el := range elements {
		ids[el.Shape] = el.ID.String()
	}
	return ids
}
