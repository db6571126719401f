// Package render provides format conversion shared by the chart sinks.
//
// [Rasterize] and [ToPNG] turn any SVG document into a bitmap using a pure-Go
// rasterizer, so no external tools are needed:
//
//	svg := sink.RenderSVG(result)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// The rasterizer draws shapes only. Text elements are ignored, which suits
// thumbnails and previews; use the PDF sink when labels must be kept.
//
// Chart-specific packages live below [blocks]:
//   - [blocks/layout]: block geometry computation
//   - [blocks/styles]: SVG styles
//   - [blocks/sink]: SVG, JSON, PNG and PDF output
package render
