package layout

// Result is a finalized chart: blocks in top-to-bottom order and the matching
// legend, plus the parameters they were computed with.
type Result struct {
	Width       float64
	Height      float64
	LegendWidth float64
	StackType   StackType
	Seed        *uint64
	Blocks      []Block
	Legend      []LegendItem
}

// Build computes the chart layout for data.
//
// The stages run in a fixed order: colors, percentages, balanced sort,
// dimensions, equal-value normalization, height clamp, reorder by stack,
// vertical stacking, centering, jitter, bottom alignment and legend.
// The clamp targets the last block of the balanced order, before any
// reordering.
//
// Build never fails. Empty input yields an empty result; zero or negative
// values produce degenerate geometry rather than an error.
func Build(data []Datum, stack StackType, opts Options) Result {
	opts = opts.withDefaults()
	g := opts.generator()

	blocks := Initialize(data)
	blocks = EnsureColors(blocks, g)
	blocks = Percentages(blocks)
	blocks = SortByPercentage(blocks)
	blocks = AssignDimensions(blocks, g, opts.SizeMultiple)
	blocks = NormalizeEqualValues(blocks)
	blocks = ClampHeight(blocks, opts.Height)
	blocks = Reorder(blocks, stack, g)
	blocks = StackVertically(blocks)
	blocks = CenterHorizontally(blocks, opts.CenterX())
	blocks = Jitter(blocks, g)
	blocks = AlignBottom(blocks, opts.Height)

	return Result{
		Width:       opts.Width,
		Height:      opts.Height,
		LegendWidth: opts.LegendWidth,
		StackType:   stack,
		Seed:        opts.Seed,
		Blocks:      blocks,
		Legend:      Legend(blocks),
	}
}
