package styles

import (
	"bytes"
	"fmt"
)

// Simple draws flat, borderless blocks.
type Simple struct{}

func (Simple) Name() string { return SimpleName }

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="block" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		b.X, b.Y, b.W, b.H, EscapeXML(b.Fill))
}

func (Simple) RenderLabel(buf *bytes.Buffer, b Block) {
	renderLabel(buf, b, "black")
}

func (Simple) RenderLegendItem(buf *bytes.Buffer, item LegendItem) {
	renderLegendItem(buf, item, "")
}

func renderLabel(buf *bytes.Buffer, b Block, fill string) {
	x, y := LabelAnchor(b)
	fmt.Fprintf(buf, `  <text class="block-label" x="%.2f" y="%.2f" text-anchor="start" dominant-baseline="middle" fill="%s" font-size="%.0f">%s</text>`+"\n",
		x, y, fill, LabelFontSize, FormatValue(b.Value))
}

func renderLegendItem(buf *bytes.Buffer, item LegendItem, stroke string) {
	fmt.Fprintf(buf, `    <g transform="translate(0, %.0f)">`+"\n", LegendRowY(item.Index))
	if stroke != "" {
		fmt.Fprintf(buf, `      <rect width="%.0f" height="%.0f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			LegendSwatchSize, LegendSwatchSize, EscapeXML(item.Color), stroke)
	} else {
		fmt.Fprintf(buf, `      <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n",
			LegendSwatchSize, LegendSwatchSize, EscapeXML(item.Color))
	}
	fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" font-size="%.0fpx">%s</text>`+"\n",
		LegendTextX, LegendTextY, LegendFontSize, EscapeXML(item.Name))
	buf.WriteString("    </g>\n")
}
