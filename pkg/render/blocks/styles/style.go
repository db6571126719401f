package styles

import (
	"bytes"
	"fmt"
	"slices"
)

// Style defines the visual appearance of a block chart.
// Implementations control how blocks, value labels and legend rows are drawn.
type Style interface {
	// Name identifies the style in configuration and JSON output.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for a single block rectangle.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderLabel writes the value label to the right of a block.
	RenderLabel(buf *bytes.Buffer, b Block)
	// RenderLegendItem writes one legend row. Coordinates are relative to
	// the legend group origin.
	RenderLegendItem(buf *bytes.Buffer, item LegendItem)
}

// Block contains all data needed to render a single chart block.
type Block struct {
	Name       string  // Datum name
	Value      float64 // Datum value, shown as the label
	X, Y, W, H float64 // Position and dimensions
	Fill       string  // CSS color
}

// LegendItem is one row of the legend.
type LegendItem struct {
	Index int
	Name  string
	Color string
}

const (
	SimpleName   = "simple"
	OutlinedName = "outlined"
)

// Names lists the registered style names.
func Names() []string { return []string{SimpleName, OutlinedName} }

// Lookup returns the style registered under name. An empty name selects
// [Simple].
func Lookup(name string) (Style, error) {
	switch name {
	case "", SimpleName:
		return Simple{}, nil
	case OutlinedName:
		return Outlined{}, nil
	}
	return nil, fmt.Errorf("unknown style %q (want one of %v)", name, Names())
}

// Valid reports whether name selects a registered style.
func Valid(name string) bool { return name == "" || slices.Contains(Names(), name) }
