package geometry

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/core/coord"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/core/scale"
	"github.com/matzehuels/chartgeom/pkg/core/shape"
	"github.com/matzehuels/chartgeom/pkg/core/theme"
)

// Option configures an Engine.
type Option func(*Engine)

// WithData sets the data rows.
func WithData(rows []map[string]any) Option { return func(e *Engine) { e.cfg.data = rows } }

// WithCoordinate sets the coordinate system. The default is a unit
// Cartesian frame, in which pixel sizes equal normalized sizes.
func WithCoordinate(c coord.Coordinate) Option { return func(e *Engine) { e.cfg.coordinate = c } }

// WithTheme sets the theme consulted for colors and width bounds.
func WithTheme(t *theme.Theme) Option { return func(e *Engine) { e.cfg.theme = t } }

// WithContainer sets the group shapes are painted into.
func WithContainer(g *primitive.Group) Option { return func(e *Engine) { e.container = g } }

// WithScaleDefs sets per-field scale definitions.
func WithScaleDefs(defs map[string]*scale.Def) Option {
	return func(e *Engine) {
		for f, d := range defs {
			e.cfg.scaleDefs[f] = d
		}
	}
}

// WithRegistry sets the registry shape names resolve against.
func WithRegistry(r *shape.Registry) Option { return func(e *Engine) { e.registry = r } }

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.logger = l } }

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
