package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInvariants(t *testing.T, res Result) {
	t.Helper()
	require.Len(t, res.Legend, len(res.Blocks))

	var pct float64
	for i, b := range res.Blocks {
		pct += b.Percentage
		assert.Equal(t, LegendItem{Name: b.Name, Color: b.Fill}, res.Legend[i])
		if i == 0 {
			continue
		}
		prev := res.Blocks[i-1]
		assert.InDelta(t, prev.Bottom(), b.Y, 1e-6, "block %d is stacked on block %d", i, i-1)
		need := min(minOverlap, b.Width, prev.Width)
		assert.GreaterOrEqual(t, overlap(prev, b), need-1e-6, "blocks %d and %d touch", i-1, i)
	}
	if len(res.Blocks) > 0 {
		assert.InDelta(t, 100, pct, 1e-6)
		assert.InDelta(t, res.Height, res.Blocks[len(res.Blocks)-1].Bottom(), 1e-6)
	}
}

func TestBuildScenarioBalanced(t *testing.T) {
	data := values(10, 20, 30, 40, 50)
	res := Build(data, StableBalanced, Options{Seed: Seed(100)})

	assert.Equal(t, []float64{10, 20, 30, 40, 50}, blockValues(res.Blocks))
	require.Len(t, res.Legend, 5)
	for i, item := range res.Legend {
		assert.Equal(t, data[i].Name, item.Name)
	}
	checkInvariants(t, res)

	again := Build(data, StableBalanced, Options{Seed: Seed(100)})
	assert.Equal(t, res, again, "same seed yields the same chart")
}

func TestBuildFillsCanvasHeight(t *testing.T) {
	res := Build(values(10, 20, 30, 40, 50), StableBalanced, Options{Rand: fixed(30)})

	assert.InDelta(t, DefaultHeight, totalHeight(res.Blocks), 1e-9)
	assert.InDelta(t, 0, res.Blocks[0].Y, 1e-9)
	for _, b := range res.Blocks[:4] {
		assert.Equal(t, 30.0, b.Width)
	}
	last := res.Blocks[4]
	assert.InDelta(t, 50.0/150*100*100, last.Area(), 1e-6, "clamped block keeps its area")
	checkInvariants(t, res)
}

func TestBuildScenarioAllEqual(t *testing.T) {
	data := values(10, 10, 10, 10, 10)
	for _, stack := range StackTypes() {
		t.Run(string(stack), func(t *testing.T) {
			checkInvariants(t, Build(data, stack, Options{Seed: Seed(3)}))

			res := Build(data, stack, Options{Rand: fixed(50)})
			require.Len(t, res.Blocks, 5)
			for _, b := range res.Blocks[1:] {
				assert.Equal(t, res.Blocks[0].Width, b.Width)
				assert.Equal(t, res.Blocks[0].Height, b.Height)
			}
			assert.ElementsMatch(t, []float64{10, 10, 10, 10, 10}, blockValues(res.Blocks))
		})
	}
}

func TestBuildScenarioInverted(t *testing.T) {
	res := Build(values(10, 20, 30, 40, 50), UnstableInverted, Options{Seed: Seed(100)})
	assert.Equal(t, []float64{50, 40, 30, 20, 10}, blockValues(res.Blocks))
	checkInvariants(t, res)
}

func TestBuildShuffled(t *testing.T) {
	data := values(10, 20, 30, 40, 50)
	res := Build(data, Shuffled, Options{Seed: Seed(9)})

	assert.ElementsMatch(t, []float64{10, 20, 30, 40, 50}, blockValues(res.Blocks))
	assert.NotEqual(t, []float64{10, 20, 30, 40, 50}, blockValues(res.Blocks))
	checkInvariants(t, res)
}

func TestBuildProperties(t *testing.T) {
	inputs := [][]float64{
		{1},
		{3, 1},
		{5, 5, 1, 9},
		{100, 1, 1, 1, 1, 1, 1},
		{12.5, 7.25, 80, 0.5, 33, 33},
	}
	for _, vs := range inputs {
		for _, stack := range StackTypes() {
			for seed := range uint64(20) {
				res := Build(values(vs...), stack, Options{Seed: Seed(seed)})
				require.Len(t, res.Blocks, len(vs))
				checkInvariants(t, res)
			}
		}
	}
}

func TestBuildStableOrderIsIdempotent(t *testing.T) {
	data := []Datum{{Value: 8, Name: "h"}, {Value: 2, Name: "b"}, {Value: 5, Name: "e"}}
	first := Build(data, StableBalanced, Options{Seed: Seed(1)})
	second := Build(data, StableBalanced, Options{Seed: Seed(2)})

	assert.Equal(t, blockValues(first.Blocks), blockValues(second.Blocks))
	assert.Equal(t, []float64{2, 5, 8}, blockValues(first.Blocks))
}

func TestBuildKeepsSuppliedColors(t *testing.T) {
	data := []Datum{{Value: 1, Name: "a", Color: "#ff0000"}, {Value: 2, Name: "b"}}
	res := Build(data, StableBalanced, Options{Seed: Seed(4)})

	assert.Equal(t, "#ff0000", res.Blocks[0].Fill)
	assert.NotEmpty(t, res.Blocks[1].Fill)
	assert.Empty(t, data[1].Color, "input must not be modified")
}

func TestBuildEmpty(t *testing.T) {
	res := Build(nil, Shuffled, Options{})
	assert.Empty(t, res.Blocks)
	assert.Empty(t, res.Legend)
	assert.Equal(t, DefaultWidth, res.Width)
}

func TestBuildAmbient(t *testing.T) {
	res := Build(values(4, 2, 9), Shuffled, Options{})
	assert.Nil(t, res.Seed)
	checkInvariants(t, res)
}

func TestBuildCustomCanvas(t *testing.T) {
	res := Build(values(1, 2, 3), StableBalanced, Options{Width: 800, Height: 500, Seed: Seed(11)})
	assert.Equal(t, 800.0, res.Width)
	assert.Equal(t, 500.0, res.Height)
	checkInvariants(t, res)
}
