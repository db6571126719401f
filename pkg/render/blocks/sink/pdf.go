package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/styles"
)

const (
	pxToMm = 25.4 / 96
	pxToPt = 0.75
)

var loadFontFamily = sync.OnceValues(func() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("go-regular")
	if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	return family, nil
})

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	labels bool
	legend bool
	title  string
}

// WithPDFLabels toggles value labels (default on).
func WithPDFLabels(on bool) PDFOption { return func(r *pdfRenderer) { r.labels = on } }

// WithPDFLegend toggles the legend (default on).
func WithPDFLegend(on bool) PDFOption { return func(r *pdfRenderer) { r.legend = on } }

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(title string) PDFOption { return func(r *pdfRenderer) { r.title = title } }

// RenderPDF draws the chart on a single PDF page sized to the chart canvas,
// at 96 px per inch. Unlike PNG output, labels and legend text are kept.
func RenderPDF(res layout.Result, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{labels: true, legend: true}
	for _, opt := range opts {
		opt(&r)
	}

	family, err := loadFontFamily()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	w, h := res.Width, res.Height
	if w <= 0 {
		w = layout.DefaultWidth
	}
	if h <= 0 {
		h = layout.DefaultHeight
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, w*pxToMm, h*pxToMm, nil)
	writer.SetInfo(r.title, "", "", "", "blockchart")

	c := canvas.New(w*pxToMm, h*pxToMm)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	drawBlocks(ctx, res.Blocks)
	if r.labels {
		drawLabels(ctx, family, res.Blocks)
	}
	if r.legend {
		drawLegend(ctx, family, w, legendWidth(res), res.Legend)
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBlocks(ctx *canvas.Context, blocks []layout.Block) {
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeWidth(0)
	for _, b := range blocks {
		ctx.SetFillColor(fillColor(b.Fill))
		ctx.DrawPath(b.X*pxToMm, b.Y*pxToMm, canvas.Rectangle(b.Width*pxToMm, b.Height*pxToMm))
	}
}

func drawLabels(ctx *canvas.Context, family *canvas.FontFamily, blocks []layout.Block) {
	face := family.Face(styles.LabelFontSize*pxToPt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	m := face.Metrics()
	for _, b := range blocks {
		x, y := styles.LabelAnchor(styles.Block{X: b.X, Y: b.Y, W: b.Width, H: b.Height})
		line := canvas.NewTextLine(face, styles.FormatValue(b.Value), canvas.Left)
		ctx.DrawText(x*pxToMm, y*pxToMm+(m.Ascent-m.Descent)/2, line)
	}
}

func drawLegend(ctx *canvas.Context, family *canvas.FontFamily, width, legendW float64, items []layout.LegendItem) {
	face := family.Face(styles.LegendFontSize*pxToPt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	ox, oy := styles.LegendOrigin(width, legendW)
	for i, it := range items {
		y := oy + styles.LegendRowY(i)
		ctx.SetFillColor(fillColor(it.Color))
		ctx.DrawPath(ox*pxToMm, y*pxToMm, canvas.Rectangle(styles.LegendSwatchSize*pxToMm, styles.LegendSwatchSize*pxToMm))

		line := canvas.NewTextLine(face, it.Name, canvas.Left)
		ctx.DrawText((ox+styles.LegendTextX)*pxToMm, (y+styles.LegendTextY)*pxToMm, line)
	}
}

// fillColor parses "#rgb" or "#rrggbb". Anything else, including CSS color
// names, falls back to gray.
func fillColor(s string) color.RGBA {
	if len(s) == 4 || len(s) == 7 {
		if s[0] == '#' && isHex(s[1:]) {
			return canvas.Hex(s)
		}
	}
	return color.RGBA{128, 128, 128, 255}
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
