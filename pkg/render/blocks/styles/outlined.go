package styles

import (
	"bytes"
	"fmt"
)

const (
	outlineColor = "#333333"
	outlineWidth = 1.5
)

// Outlined draws blocks with a dark border and a soft drop shadow.
type Outlined struct{}

func (Outlined) Name() string { return OutlinedName }

func (Outlined) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="block-shadow" x="-10%" y="-10%" width="130%" height="130%">
      <feDropShadow dx="1.5" dy="1.5" stdDeviation="1" flood-opacity="0.25"/>
    </filter>
  </defs>
`)
}

func (Outlined) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="block" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%.1f" filter="url(#block-shadow)"/>`+"\n",
		b.X, b.Y, b.W, b.H, EscapeXML(b.Fill), outlineColor, outlineWidth)
}

func (Outlined) RenderLabel(buf *bytes.Buffer, b Block) {
	renderLabel(buf, b, outlineColor)
}

func (Outlined) RenderLegendItem(buf *bytes.Buffer, item LegendItem) {
	renderLegendItem(buf, item, outlineColor)
}
