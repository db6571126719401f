package styles

// Legend geometry, in px.
const (
	LegendItemHeight   = 16.0
	LegendPaddingTop   = 10.0
	LegendPaddingRight = 10.0
	LegendSwatchSize   = 10.0
	LegendTextX        = 15.0
	LegendTextY        = 10.0
	LegendFontSize     = 16.0
)

// LegendOrigin returns the top-left corner of the legend on a canvas of the
// given width with legendWidth reserved on the right.
func LegendOrigin(width, legendWidth float64) (x, y float64) {
	return width - legendWidth - LegendPaddingRight, LegendPaddingTop
}

// LegendRowY returns the y offset of row i relative to the legend origin.
func LegendRowY(i int) float64 { return float64(i) * LegendItemHeight }
