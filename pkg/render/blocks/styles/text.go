package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

const (
	// LabelOffsetX is the gap between a block's right edge and its label.
	LabelOffsetX = 20.0
	// LabelFontSize is the value label size in px.
	LabelFontSize = 12.0
)

// FormatValue renders a value the way labels show it: shortest exact
// decimal, no exponent.
func FormatValue(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// LabelAnchor returns where a block's value label starts. The label is
// vertically centered on the block.
func LabelAnchor(b Block) (x, y float64) { return b.X + b.W + LabelOffsetX, b.Y + b.H/2 }

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
