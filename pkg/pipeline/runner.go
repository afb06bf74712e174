package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/core/geometry"
	"github.com/matzehuels/chartgeom/pkg/core/theme"
	"github.com/matzehuels/chartgeom/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner. Every run builds its own engine.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → paint → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Document = doc
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Records = len(doc.Data.Values)
	if result.DocHash, err = HashDocument(doc); err != nil {
		return nil, fmt.Errorf("hash document: %w", err)
	}

	// Stage 2: Paint
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paintStart := time.Now()
	engine, err := r.Paint(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("paint: %w", err)
	}
	result.Engine = engine
	result.Elements = engine.Elements()
	result.Stats.PaintTime = time.Since(paintStart)
	result.Stats.Groups = len(engine.Groups())
	result.Stats.Shapes = len(result.Elements)

	r.Logger.Info("painted chart",
		"records", result.Stats.Records,
		"shapes", result.Stats.Shapes,
		"duration", result.Stats.PaintTime)

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.DocHash, engine, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the chart named by opts. A document passed in
// opts is resolved without file access.
func (r *Runner) Load(ctx context.Context, opts Options) (doc *chart.Document, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	source := opts.ChartPath
	if opts.Document != nil {
		source = "inline"
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	defer func() {
		records := 0
		if doc != nil {
			records = len(doc.Data.Values)
		}
		hooks.OnLoadComplete(ctx, source, records, time.Since(start), err)
	}()

	if opts.Document == nil {
		return chart.Load(opts.ChartPath)
	}
	doc = opts.Document
	doc.SetDefaults()
	if err := doc.Resolve(nil); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Paint builds an engine from doc and paints it.
func (r *Runner) Paint(ctx context.Context, doc *chart.Document, opts Options) (engine *geometry.Engine, err error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnPaintStart(ctx, doc.Shape, len(doc.Data.Values))
	start := time.Now()
	shapes := 0
	defer func() {
		hooks.OnPaintComplete(ctx, doc.Shape, shapes, time.Since(start), err)
	}()

	engine, err = doc.Build(geometry.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	engine.Initial()
	shapes = len(engine.Paint())
	return engine, nil
}

// RenderWithCacheInfo serializes the painted engine in every requested
// format and reports whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, docHash string, engine *geometry.Engine, doc *chart.Document, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	cacheHooks := observability.Cache()

	artifacts := make(map[string][]byte)
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(doc, format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			} else if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
		}
		cacheHooks.OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, engine, doc, renderOpts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(doc, format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// HashDocument returns the content hash of a resolved document, covering
// its data and effective theme.
func HashDocument(doc *chart.Document) (string, error) {
	th, err := doc.ResolvedTheme()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(struct {
		Doc   *chart.Document `json:"doc"`
		Theme *theme.Theme    `json:"theme"`
	}{doc, th})
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
