package layout

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockchart/pkg/random"
)

const eps = 1e-9

// fixed returns the same value for every draw, clamped into range.
type fixed int

func (f fixed) Int(lo, hi int) int { return max(lo, min(int(f), hi)) }

// script replays draws in order, ignoring the requested range.
type script struct {
	draws []int
	calls int
}

func (s *script) Int(_, _ int) int {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

func values(vs ...float64) []Datum {
	data := make([]Datum, len(vs))
	for i, v := range vs {
		data[i] = Datum{Value: v, Name: string(rune('a' + i))}
	}
	return data
}

func blockValues(blocks []Block) []float64 {
	out := make([]float64, len(blocks))
	for i, b := range blocks {
		out[i] = b.Value
	}
	return out
}

func TestInitialize(t *testing.T) {
	data := []Datum{{Value: 3, Name: "x", Color: "#ff0000"}, {Value: 1, Name: "y"}}
	blocks := Initialize(data)

	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Value: 3, Name: "x", Fill: "#ff0000"}, blocks[0])
	assert.Equal(t, Block{Value: 1, Name: "y"}, blocks[1])
	assert.Empty(t, Initialize(nil))
}

func TestEnsureColors(t *testing.T) {
	in := []Block{{Name: "a", Fill: "#123456"}, {Name: "b"}, {Name: "c"}}
	out := EnsureColors(in, random.Seeded(1))

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	assert.Equal(t, "#123456", out[0].Fill)
	assert.Regexp(t, hex, out[1].Fill)
	assert.Regexp(t, hex, out[2].Fill)
	assert.Empty(t, in[1].Fill, "input must not be modified")
}

func TestEnsureColorsDrawsOnlyForMissing(t *testing.T) {
	g := &script{draws: []int{0xabcdef}}
	EnsureColors([]Block{{Fill: "#000000"}, {}, {Fill: "red"}}, g)
	assert.Equal(t, 1, g.calls)
}

func TestPercentages(t *testing.T) {
	out := Percentages(Initialize(values(10, 20, 30, 40)))

	var sum float64
	for _, b := range out {
		sum += b.Percentage
		assert.InDelta(t, b.Value/100*100, b.Percentage, eps)
	}
	assert.InDelta(t, 100, sum, eps)
}

func TestPercentagesZeroTotal(t *testing.T) {
	out := Percentages(Initialize(values(0, 0)))
	require.Len(t, out, 2)
	assert.True(t, math.IsNaN(out[0].Percentage))
}

func TestSortByPercentageStable(t *testing.T) {
	in := Percentages(Initialize([]Datum{
		{Value: 5, Name: "first"},
		{Value: 1, Name: "small"},
		{Value: 5, Name: "second"},
	}))
	out := SortByPercentage(in)

	names := []string{out[0].Name, out[1].Name, out[2].Name}
	assert.Equal(t, []string{"small", "first", "second"}, names)
	assert.Equal(t, "first", in[0].Name, "input must not be modified")
}

func TestAssignDimensions(t *testing.T) {
	in := SortByPercentage(Percentages(Initialize(values(40, 10, 30, 20))))
	out := AssignDimensions(in, random.Seeded(7), 100)

	for i, b := range out {
		assert.GreaterOrEqual(t, b.Width, float64(minBlockWidth))
		assert.LessOrEqual(t, b.Width, float64(maxBlockWidth))
		assert.InDelta(t, b.Percentage*100, b.Area(), 1e-6)
		if i > 0 {
			assert.GreaterOrEqual(t, b.Width, out[i-1].Width, "widths are paired in ascending order")
		}
	}
}

func TestNormalizeEqualValues(t *testing.T) {
	in := []Block{
		{Value: 5, Width: 10, Height: 50},
		{Value: 5, Width: 40, Height: 12.5},
		{Value: 7, Width: 20, Height: 35},
		{Value: 5, Width: 20, Height: 25},
	}
	out := NormalizeEqualValues(in)

	for _, i := range []int{0, 1, 3} {
		assert.Equal(t, 40.0, out[i].Width)
		assert.Equal(t, 12.5, out[i].Height)
	}
	assert.Equal(t, in[2], out[2], "singleton groups are untouched")
	assert.Equal(t, 10.0, in[0].Width, "input must not be modified")
}

func TestNormalizeEqualValuesTiesKeepFirst(t *testing.T) {
	out := NormalizeEqualValues([]Block{
		{Value: 1, Width: 10, Height: 5},
		{Value: 1, Width: 20, Height: 5},
	})
	assert.Equal(t, 10.0, out[1].Width)
}

func TestClampHeight(t *testing.T) {
	tests := []struct {
		name      string
		in        []Block
		max       float64
		wantLastH float64
	}{
		{
			name:      "under limit",
			in:        []Block{{Width: 10, Height: 100}, {Width: 20, Height: 100}},
			max:       300,
			wantLastH: 100,
		},
		{
			name:      "exact limit",
			in:        []Block{{Width: 10, Height: 100}, {Width: 20, Height: 200}},
			max:       300,
			wantLastH: 200,
		},
		{
			name:      "overflow",
			in:        []Block{{Width: 10, Height: 100}, {Width: 20, Height: 250}},
			max:       300,
			wantLastH: 200,
		},
		{
			name:      "overflow beyond last block",
			in:        []Block{{Width: 10, Height: 400}, {Width: 20, Height: 50}},
			max:       300,
			wantLastH: minClampedH,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ClampHeight(tt.in, tt.max)
			last := out[len(out)-1]
			before := tt.in[len(tt.in)-1]

			assert.InDelta(t, tt.wantLastH, last.Height, eps)
			assert.InDelta(t, before.Area(), last.Area(), 1e-6, "area is preserved")
			assert.Equal(t, tt.in[:len(tt.in)-1], out[:len(out)-1], "only the last block changes")
		})
	}
}

func TestClampHeightFitsCanvas(t *testing.T) {
	out := ClampHeight([]Block{{Width: 10, Height: 120}, {Width: 30, Height: 250}}, 300)
	assert.InDelta(t, 300, totalHeight(out), eps)
}

func TestClampHeightDegenerate(t *testing.T) {
	assert.Empty(t, ClampHeight(nil, 300))

	nan := []Block{{Width: math.NaN(), Height: math.NaN()}}
	out := ClampHeight(nan, 300)
	assert.True(t, math.IsNaN(out[0].Height))
}

func TestReorder(t *testing.T) {
	in := Initialize(values(10, 20, 30, 40, 50))

	t.Run("stable", func(t *testing.T) {
		assert.Equal(t, in, Reorder(in, StableBalanced, random.Seeded(1)))
	})
	t.Run("inverted", func(t *testing.T) {
		out := Reorder(in, UnstableInverted, random.Seeded(1))
		assert.Equal(t, []float64{50, 40, 30, 20, 10}, blockValues(out))
		assert.Equal(t, []float64{10, 20, 30, 40, 50}, blockValues(in))
	})
	t.Run("shuffled", func(t *testing.T) {
		out := Reorder(in, Shuffled, random.Seeded(1))
		assert.ElementsMatch(t, in, out)
		assert.NotEqual(t, in, out)
	})
	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, in, Reorder(in, "sideways", random.Seeded(1)))
	})
}

func TestReorderShuffledAllEqual(t *testing.T) {
	in := NormalizeEqualValues(Initialize(values(10, 10, 10)))
	for i := range in {
		in[i].Name = ""
	}
	g := &script{draws: []int{0}}
	out := Reorder(in, Shuffled, g)

	assert.Equal(t, in, out)
	assert.Zero(t, g.calls, "unshuffleable input draws nothing")
}

func TestStackVertically(t *testing.T) {
	out := StackVertically([]Block{{Height: 10}, {Height: 25}, {Height: 5}})

	assert.Equal(t, 0.0, out[0].Y)
	for i := 1; i < len(out); i++ {
		assert.Equal(t, out[i-1].Bottom(), out[i].Y)
	}
}

func TestCenterHorizontally(t *testing.T) {
	out := CenterHorizontally([]Block{{Width: 20}, {Width: 50}}, 110)
	for _, b := range out {
		assert.Equal(t, 110.0, b.CenterX())
	}
}

func TestJitter(t *testing.T) {
	tests := []struct {
		name   string
		in     []Block
		draws  []int
		wantX  []float64
	}{
		{
			name:  "within range keeps shift",
			in:    []Block{{X: 5, Width: 10}, {X: 0, Width: 20}},
			draws: []int{0, 3},
			wantX: []float64{8, 0},
		},
		{
			name:  "drift right is pulled back",
			in:    []Block{{X: 15, Width: 10}, {X: 0, Width: 20}},
			draws: []int{0, 10},
			wantX: []float64{19, 0},
		},
		{
			name:  "drift left is pulled back",
			in:    []Block{{X: -5, Width: 10}, {X: 0, Width: 20}},
			draws: []int{0, -10},
			wantX: []float64{-9, 0},
		},
		{
			name:  "bottom block moves freely",
			in:    []Block{{X: 0, Width: 30}},
			draws: []int{-7},
			wantX: []float64{-7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Jitter(tt.in, &script{draws: tt.draws})
			for i, b := range out {
				assert.InDelta(t, tt.wantX[i], b.X, eps)
			}
		})
	}
}

func TestJitterKeepsOverlap(t *testing.T) {
	for seed := range uint64(50) {
		in := CenterHorizontally([]Block{{Width: 10}, {Width: 12}, {Width: 40}, {Width: 90}}, 110)
		out := Jitter(in, random.Seeded(seed))
		for i := 0; i < len(out)-1; i++ {
			need := min(minOverlap, out[i].Width, out[i+1].Width)
			assert.GreaterOrEqual(t, overlap(out[i], out[i+1]), need-eps, "seed %d block %d", seed, i)
		}
	}
}

func TestJitterNarrowBlocks(t *testing.T) {
	out := Jitter([]Block{{X: 30, Width: 0.5}, {X: 0, Width: 0.5}}, &script{draws: []int{0, 0}})
	assert.InDelta(t, 0, out[0].X, eps, "a block narrower than the overlap must fully overlap")
}

func TestAlignBottom(t *testing.T) {
	in := StackVertically([]Block{{Height: 50}, {Height: 100}})
	out := AlignBottom(in, 300)

	assert.Equal(t, 150.0, out[0].Y)
	assert.Equal(t, 300.0, out[1].Bottom())
	assert.Equal(t, 0.0, in[0].Y)
}

func TestLegend(t *testing.T) {
	blocks := []Block{{Name: "a", Fill: "#111111"}, {Name: "b", Fill: "#222222"}}
	assert.Equal(t, []LegendItem{{"a", "#111111"}, {"b", "#222222"}}, Legend(blocks))
	assert.Empty(t, Legend(nil))
}
