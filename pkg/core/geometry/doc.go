// Package geometry implements the interval mark: bars, columns, rose
// petals and pie slices.
//
// # Lifecycle
//
// An [Engine] is configured once and painted many times:
//
//	e := geometry.New(
//	    geometry.WithData(rows),
//	    geometry.WithCoordinate(coord.NewCartesian(start, end)),
//	    geometry.WithTheme(theme.Default()),
//	)
//	if err := e.Position("genre*sold"); err != nil {
//	    return err
//	}
//	e.Color("genre")
//	e.Initial()
//	e.Paint()
//
// [Engine.Initial] builds the x and y scales from data, adjusts the y
// domain so bars grow from zero, splits records into groups by the color
// field and computes the default column width. [Engine.Paint] computes the
// corner points of every record (see [Engine.BeforeMapping]), clamps each
// width to the theme's column width bounds in pixels, and renders one shape
// per record into the container. Painting again replaces the previous
// shapes.
//
// [Engine.Clear] drops everything derived from data (default width, groups,
// painted elements) while keeping configuration, including an explicit
// [Engine.Size]. [Engine.Destroy] is terminal: the container is destroyed
// and any further operation panics.
//
// # Zero Baseline
//
// A continuous, non-time y scale always contains zero unless the caller
// pins the relevant bound with a [scale.Def]: a positive unpinned minimum
// drops to zero and a negative unpinned maximum rises to zero. In a
// transposed polar coordinate (pie) the minimum is always forced to zero.
//
// # Widths
//
// Without an explicit size, the width of a column is the category slot
// (1/count) times a ratio from the theme: ColumnWidthRatio in Cartesian
// coordinates, RoseWidthRatio in polar ones, and MultiplePieWidthRatio for
// transposed polar charts with several categories. Explicit sizes are in
// pixels and converted with the physical length of the x dimension.
//
// The engine is not safe for concurrent use.
package geometry
