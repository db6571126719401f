// Package styles provides visual styles for block chart rendering.
//
// A [Style] writes SVG fragments for blocks, value labels and legend rows
// into a shared buffer; the sink package assembles them into a document.
// Two styles are built in: [Simple], flat rectangles, and [Outlined], which
// adds a border and drop shadow. [Lookup] resolves a style by name.
//
// The geometry helpers ([LabelAnchor], [LegendOrigin], [LegendRowY]) are
// shared with non-SVG sinks so every format places text identically.
package styles
