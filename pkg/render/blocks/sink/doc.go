// Package sink provides output format renderers for block charts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Result] into a final output format.
// This package provides renderers for:
//
//   - SVG: scalable vector graphics with labels and legend
//   - JSON: layout data export for external tools
//   - PNG: raster image output (shapes only)
//   - PDF: print-ready vector output with text
//
// # SVG Output
//
// [RenderSVG] draws one rect per block in stacking order, an optional value
// label 20px right of each block and the legend in the top-right corner:
//
//	svg := sink.RenderSVG(result,
//	    sink.WithStyle(styles.Outlined{}),
//	    sink.WithLabels(false),
//	)
//
// # JSON Output
//
// [RenderJSON] exports the complete chart, including the seed when the
// layout was seeded. [ReadJSON] reverses it so a stored layout can be
// rendered again in another format without recomputing it.
//
// # PNG and PDF Output
//
// [RenderPNG] rasterizes the SVG output with [render.ToPNG]. The rasterizer
// has no text support, so labels and legend names are dropped. [RenderPDF]
// draws the chart directly on a PDF page and keeps all text.
//
//	png, err := sink.RenderPNG(result, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(result)
//
// [layout.Result]: github.com/matzehuels/blockchart/pkg/render/blocks/layout.Result
// [render.ToPNG]: github.com/matzehuels/blockchart/pkg/render.ToPNG
package sink
