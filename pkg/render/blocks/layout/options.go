package layout

import "github.com/matzehuels/blockchart/pkg/random"

// StackType selects how blocks are ordered top to bottom.
type StackType string

const (
	// StableBalanced keeps ascending size order, so the largest block sits
	// at the bottom of the tower.
	StableBalanced StackType = "stable-balanced"
	// UnstableInverted puts the largest block on top.
	UnstableInverted StackType = "unstable-inverted"
	// Shuffled uses a random order that differs from the balanced one
	// whenever the blocks allow it.
	Shuffled StackType = "shuffled"
)

// StackTypes lists all supported stack types.
func StackTypes() []StackType {
	return []StackType{StableBalanced, UnstableInverted, Shuffled}
}

// Valid reports whether s is one of the supported stack types.
func (s StackType) Valid() bool {
	switch s {
	case StableBalanced, UnstableInverted, Shuffled:
		return true
	}
	return false
}

const (
	DefaultWidth        = 400.0
	DefaultHeight       = 300.0
	DefaultSizeMultiple = 100.0
	DefaultLegendWidth  = 100.0
	DefaultOffsetX      = 40.0

	minBlockWidth = 10
	maxBlockWidth = 100
	maxJitter     = 10
	minOverlap    = 1.0
	minClampedH   = 1.0
)

// Options configures [Build]. Zero fields take the package defaults.
type Options struct {
	// Width and Height are the drawable canvas size.
	Width, Height float64

	// SizeMultiple converts a percentage of the total into an area proxy.
	SizeMultiple float64

	// LegendWidth is the horizontal space reserved for the legend on the
	// right edge. OffsetX shifts the tower left of the remaining center.
	LegendWidth float64
	OffsetX     float64

	// Seed makes the layout reproducible. Nil selects ambient randomness.
	Seed *uint64

	// Rand overrides Seed with an explicit generator.
	Rand random.Generator
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.SizeMultiple == 0 {
		o.SizeMultiple = DefaultSizeMultiple
	}
	if o.LegendWidth == 0 {
		o.LegendWidth = DefaultLegendWidth
	}
	if o.OffsetX == 0 {
		o.OffsetX = DefaultOffsetX
	}
	return o
}

// CenterX returns the x coordinate blocks are centered on.
func (o Options) CenterX() float64 {
	o = o.withDefaults()
	return (o.Width-o.LegendWidth)/2 - o.OffsetX
}

func (o Options) generator() random.Generator {
	switch {
	case o.Rand != nil:
		return o.Rand
	case o.Seed != nil:
		return random.Seeded(*o.Seed)
	default:
		return random.Ambient()
	}
}

// Seed is a convenience for filling [Options.Seed].
func Seed(v uint64) *uint64 { return &v }
