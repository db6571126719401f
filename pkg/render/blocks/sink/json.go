package sink

import (
	"encoding/json"

	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g., "simple", "outlined") in the
// JSON output for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	LegendWidth float64      `json:"legend_width"`
	StackType   string       `json:"stack_type"`
	Seed        *uint64      `json:"seed,omitempty"`
	Style       string       `json:"style,omitempty"`
	Blocks      []jsonBlock  `json:"blocks"`
	Legend      []jsonLegend `json:"legend"`
}

type jsonBlock struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Fill       string  `json:"fill"`
	Percentage float64 `json:"percentage"`
}

type jsonLegend struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RenderJSON exports the chart as indented JSON. Blocks and legend entries
// keep their stacking order. Non-finite geometry cannot be encoded and is
// reported as an error.
func RenderJSON(res layout.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:       res.Width,
		Height:      res.Height,
		LegendWidth: res.LegendWidth,
		StackType:   string(res.StackType),
		Seed:        res.Seed,
		Style:       r.style,
		Blocks:      make([]jsonBlock, len(res.Blocks)),
		Legend:      make([]jsonLegend, len(res.Legend)),
	}
	for i, b := range res.Blocks {
		out.Blocks[i] = jsonBlock{
			Name:       b.Name,
			Value:      b.Value,
			X:          b.X,
			Y:          b.Y,
			Width:      b.Width,
			Height:     b.Height,
			Fill:       b.Fill,
			Percentage: b.Percentage,
		}
	}
	for i, it := range res.Legend {
		out.Legend[i] = jsonLegend{Name: it.Name, Color: it.Color}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON parses data produced by [RenderJSON] back into a chart, for
// re-rendering a stored layout in another format.
func ReadJSON(data []byte) (layout.Result, error) {
	var in jsonOutput
	if err := json.Unmarshal(data, &in); err != nil {
		return layout.Result{}, err
	}

	res := layout.Result{
		Width:       in.Width,
		Height:      in.Height,
		LegendWidth: in.LegendWidth,
		StackType:   layout.StackType(in.StackType),
		Seed:        in.Seed,
		Blocks:      make([]layout.Block, len(in.Blocks)),
		Legend:      make([]layout.LegendItem, len(in.Legend)),
	}
	for i, b := range in.Blocks {
		res.Blocks[i] = layout.Block{
			Value:      b.Value,
			Name:       b.Name,
			X:          b.X,
			Y:          b.Y,
			Width:      b.Width,
			Height:     b.Height,
			Fill:       b.Fill,
			Percentage: b.Percentage,
		}
	}
	for i, it := range in.Legend {
		res.Legend[i] = layout.LegendItem{Name: it.Name, Color: it.Color}
	}
	return res, nil
}
