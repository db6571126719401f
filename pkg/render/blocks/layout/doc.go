// Package layout computes block-chart geometry.
//
// A block chart draws each value as a rectangle whose area is proportional to
// the value's share of the total. Widths are drawn at random and heights
// follow from the area, so the same data yields a differently shaped tower
// on every run unless a seed is given. Blocks are stacked vertically, jittered
// sideways and aligned to the bottom edge of the canvas.
//
// # Pipeline
//
// [Build] runs a fixed sequence of pure stages. Each stage is exported so it
// can be tested or recombined on its own:
//
//	Initialize → EnsureColors → Percentages → SortByPercentage →
//	AssignDimensions → NormalizeEqualValues → ClampHeight → Reorder →
//	StackVertically → CenterHorizontally → Jitter → AlignBottom → Legend
//
// # Randomness
//
// Stages that need randomness take a [random.Generator]. [Options.Rand]
// injects one directly; [Options.Seed] builds a deterministic generator; with
// neither set the ambient runtime source is used.
//
// # Coordinates
//
// Coordinates follow SVG conventions: the origin is the top-left corner of
// the canvas and Y grows downward.
package layout
