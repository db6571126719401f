package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/blockchart/pkg/random"
)

// Each stage takes a block slice and returns a new one. Inputs are never
// modified, so stages can be composed or tested in isolation.

// Initialize creates one zero-geometry block per datum.
func Initialize(data []Datum) []Block {
	out := make([]Block, len(data))
	for i, d := range data {
		out[i] = Block{Value: d.Value, Name: d.Name, Fill: d.Color}
	}
	return out
}

// EnsureColors assigns a random "#rrggbb" fill to blocks without one.
func EnsureColors(blocks []Block, g random.Generator) []Block {
	out := slices.Clone(blocks)
	for i := range out {
		if out[i].Fill == "" {
			out[i].Fill = random.HexColor(g)
		}
	}
	return out
}

// Percentages sets each block's share of the total value, in percent.
// A zero total yields NaN or Inf percentages.
func Percentages(blocks []Block) []Block {
	var total float64
	for _, b := range blocks {
		total += b.Value
	}
	out := slices.Clone(blocks)
	for i := range out {
		out[i].Percentage = out[i].Value / total * 100
	}
	return out
}

// SortByPercentage orders blocks by ascending percentage. Ties keep their
// input order.
func SortByPercentage(blocks []Block) []Block {
	out := slices.Clone(blocks)
	slices.SortStableFunc(out, func(a, b Block) int {
		return cmp.Compare(a.Percentage, b.Percentage)
	})
	return out
}

// AssignDimensions draws one width per block, sorts the widths ascending and
// pairs them with blocks by index. Height follows from the area proxy
// percentage*multiple. Blocks are expected in ascending percentage order, so
// the smallest share gets the narrowest width of the draw.
func AssignDimensions(blocks []Block, g random.Generator, multiple float64) []Block {
	widths := random.SortedInts(g, minBlockWidth, maxBlockWidth, len(blocks))
	out := slices.Clone(blocks)
	for i := range out {
		w := float64(widths[i])
		out[i].Width = w
		out[i].Height = out[i].Percentage * multiple / w
	}
	return out
}

// NormalizeEqualValues gives blocks with identical values identical sizes:
// every member of a group takes the width and height of the group's
// shortest member.
func NormalizeEqualValues(blocks []Block) []Block {
	out := slices.Clone(blocks)
	groups := make(map[float64][]int)
	var keys []float64
	for i, b := range out {
		if _, ok := groups[b.Value]; !ok {
			keys = append(keys, b.Value)
		}
		groups[b.Value] = append(groups[b.Value], i)
	}

	for _, k := range keys {
		idx := groups[k]
		if len(idx) < 2 {
			continue
		}
		ref := out[idx[0]]
		for _, i := range idx[1:] {
			if out[i].Height < ref.Height {
				ref = out[i]
			}
		}
		for _, i := range idx {
			out[i].Width, out[i].Height = ref.Width, ref.Height
		}
	}
	return out
}

// ClampHeight shrinks the last block when the stack is taller than
// maxHeight. The block loses the overflow from its height and is widened to
// keep its area. Its height never drops below one unit (or its current
// height, if already smaller); any overflow left after that is absorbed by
// bottom alignment.
func ClampHeight(blocks []Block, maxHeight float64) []Block {
	out := slices.Clone(blocks)
	if len(out) == 0 {
		return out
	}
	overflow := totalHeight(out) - maxHeight
	if !(overflow > 0) {
		return out
	}

	last := &out[len(out)-1]
	area := last.Area()
	h := max(last.Height-overflow, min(last.Height, minClampedH))
	if h <= 0 {
		return out
	}
	last.Height = h
	last.Width = area / h
	return out
}

// Reorder applies the stack type to blocks in balanced order.
func Reorder(blocks []Block, stack StackType, g random.Generator) []Block {
	switch stack {
	case UnstableInverted:
		out := slices.Clone(blocks)
		slices.Reverse(out)
		return out
	case Shuffled:
		return random.Shuffle(g, blocks)
	default:
		return slices.Clone(blocks)
	}
}

// StackVertically places blocks top-down, the first one at y=0.
func StackVertically(blocks []Block) []Block {
	out := slices.Clone(blocks)
	var y float64
	for i := range out {
		out[i].Y = y
		y += out[i].Height
	}
	return out
}

// CenterHorizontally centers every block on centerX.
func CenterHorizontally(blocks []Block, centerX float64) []Block {
	out := slices.Clone(blocks)
	for i := range out {
		out[i].X = centerX - out[i].Width/2
	}
	return out
}

// Jitter shifts blocks sideways by a random amount in [-10, 10], walking
// from the bottom block up. After each shift the block is nudged back, by
// the smallest amount possible, until it overlaps the block below it by at
// least one unit, so the tower never floats apart.
func Jitter(blocks []Block, g random.Generator) []Block {
	out := slices.Clone(blocks)
	for i := len(out) - 1; i >= 0; i-- {
		out[i].X += float64(g.Int(-maxJitter, maxJitter))
		if i == len(out)-1 {
			continue
		}
		out[i].X = connect(out[i], out[i+1])
	}
	return out
}

// connect returns the x for b that keeps at least the required overlap with
// the block below it.
func connect(b, below Block) float64 {
	need := min(minOverlap, b.Width, below.Width)
	if overlap(b, below) >= need {
		return b.X
	}
	if b.CenterX() < below.CenterX() {
		return below.X + need - b.Width
	}
	return below.Right() - need
}

func overlap(a, b Block) float64 {
	return min(a.Right(), b.Right()) - max(a.X, b.X)
}

// AlignBottom shifts the whole stack so its bottom edge sits on height.
// A stack taller than height is shifted up and overhangs the top.
func AlignBottom(blocks []Block, height float64) []Block {
	diff := height - totalHeight(blocks)
	out := slices.Clone(blocks)
	for i := range out {
		out[i].Y += diff
	}
	return out
}

// Legend derives one legend entry per block, in block order.
func Legend(blocks []Block) []LegendItem {
	items := make([]LegendItem, len(blocks))
	for i, b := range blocks {
		items[i] = LegendItem{Name: b.Name, Color: b.Fill}
	}
	return items
}

func totalHeight(blocks []Block) float64 {
	var sum float64
	for _, b := range blocks {
		sum += b.Height
	}
	return sum
}
