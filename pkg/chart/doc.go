// Package chart loads declarative chart documents and turns them into
// configured geometry engines.
//
// A document names the data, the channel encodings, per-field scale
// definitions, the coordinate system, the shape and theme overrides:
//
//	title = "Sales by genre"
//	width = 640.0
//	height = 480.0
//	shape = "rect"
//
//	[encode]
//	position = "genre*sold"
//
//	[coordinate]
//	type = "rect"
//
//	[[data.values]]
//	genre = "Sports"
//	sold = 275
//
// Documents may be TOML or JSON, chosen by file extension. Data can be
// given inline or read from a CSV or JSON file next to the document; a
// theme may likewise come from a TOML file and be refined inline.
//
// [Load] reads, resolves and validates a document. [Document.Build] returns
// a [geometry.Engine] ready for Initial and Paint.
package chart
