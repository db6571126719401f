package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style         styles.Style
	labels        bool
	legend        bool
	width, height float64
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithLabels(on bool) SVGOption       { return func(r *svgRenderer) { r.labels = on } }
func WithLegend(on bool) SVGOption       { return func(r *svgRenderer) { r.legend = on } }

// WithCanvas overrides the document size. By default the chart's own canvas
// size is used.
func WithCanvas(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// RenderSVG draws the chart as a standalone SVG document: one rect per block
// in stacking order, value labels right of each block and the legend in the
// top-right corner.
func RenderSVG(res layout.Result, opts ...SVGOption) []byte {
	r := newSVGRenderer(res, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	r.style.RenderDefs(&buf)
	blocks := buildBlocks(res)
	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range blocks {
			r.style.RenderLabel(&buf, b)
		}
	}
	if r.legend && len(res.Legend) > 0 {
		renderLegend(&buf, r, res)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(res layout.Result, opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:  styles.Simple{},
		labels: true,
		legend: true,
		width:  res.Width,
		height: res.Height,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		r.width = layout.DefaultWidth
	}
	if r.height <= 0 {
		r.height = layout.DefaultHeight
	}
	return r
}

func renderLegend(buf *bytes.Buffer, r svgRenderer, res layout.Result) {
	x, y := styles.LegendOrigin(r.width, legendWidth(res))
	fmt.Fprintf(buf, `  <g class="legend" transform="translate(%.0f, %.0f)">`+"\n", x, y)
	for _, item := range buildLegend(res) {
		r.style.RenderLegendItem(buf, item)
	}
	buf.WriteString("  </g>\n")
}

func buildBlocks(res layout.Result) []styles.Block {
	blocks := make([]styles.Block, len(res.Blocks))
	for i, b := range res.Blocks {
		blocks[i] = styles.Block{
			Name:  b.Name,
			Value: b.Value,
			X:     b.X, Y: b.Y,
			W: b.Width, H: b.Height,
			Fill: b.Fill,
		}
	}
	return blocks
}

func buildLegend(res layout.Result) []styles.LegendItem {
	items := make([]styles.LegendItem, len(res.Legend))
	for i, it := range res.Legend {
		items[i] = styles.LegendItem{Index: i, Name: it.Name, Color: it.Color}
	}
	return items
}

func legendWidth(res layout.Result) float64 {
	if res.LegendWidth > 0 {
		return res.LegendWidth
	}
	return layout.DefaultLegendWidth
}
