package layout

// Datum is one caller-supplied value to chart.
// An empty Color means no color was supplied and one is drawn at random.
type Datum struct {
	Value float64 `json:"value" toml:"value" yaml:"value"`
	Name  string  `json:"name" toml:"name" yaml:"name"`
	Color string  `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
}

// Block is a single rectangle of the chart. Coordinates follow SVG
// conventions: X grows to the right and Y grows downward from the top edge.
type Block struct {
	Value      float64
	Name       string
	X, Y       float64
	Width      float64
	Height     float64
	Fill       string
	Percentage float64
}

// Right returns the x coordinate of the block's right edge.
func (b Block) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the block's bottom edge.
func (b Block) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return b.Y + b.Height/2 }

// Area returns width times height.
func (b Block) Area() float64 { return b.Width * b.Height }

// LegendItem pairs a block name with its fill color.
type LegendItem struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
