package random

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBounds(t *testing.T) {
	gens := map[string]Generator{
		"ambient": Ambient(),
		"seeded":  Seeded(7),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			for range 1000 {
				v := g.Int(-10, 10)
				require.GreaterOrEqual(t, v, -10)
				require.LessOrEqual(t, v, 10)
			}
		})
	}
}

func TestIntDegenerateRange(t *testing.T) {
	g := Seeded(1)
	for range 10 {
		assert.Equal(t, 5, g.Int(5, 5))
	}
}

func TestIntHitsBothBounds(t *testing.T) {
	g := Seeded(99)
	seen := map[int]bool{}
	for range 500 {
		seen[g.Int(0, 3)] = true
	}
	assert.True(t, seen[0], "min bound should be reachable")
	assert.True(t, seen[3], "max bound should be reachable")
}

func TestSeededIsReproducible(t *testing.T) {
	a, b := Seeded(100), Seeded(100)
	for range 50 {
		require.Equal(t, a.Int(0, 1<<20), b.Int(0, 1<<20))
	}
	assert.Equal(t, uint64(100), a.Seed())
}

func TestSeededDiffersAcrossSeeds(t *testing.T) {
	a, b := Seeded(1), Seeded(2)
	same := true
	for range 20 {
		if a.Int(0, 1<<30) != b.Int(0, 1<<30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different streams")
}

func TestSortedInts(t *testing.T) {
	got := SortedInts(Seeded(3), 10, 100, 25)
	require.Len(t, got, 25)
	assert.True(t, slices.IsSorted(got))
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 100)
	}
	assert.Empty(t, SortedInts(Seeded(3), 10, 100, 0))
}

func TestShuffle(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	orig := slices.Clone(in)

	got := Shuffle(Seeded(100), in)

	assert.Equal(t, orig, in, "input must not be modified")
	assert.NotEqual(t, in, got, "shuffle should differ from the input")
	assert.ElementsMatch(t, in, got)
}

func TestShuffleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{"nil", nil},
		{"empty", []int{}},
		{"single", []int{1}},
		{"all equal", []int{10, 10, 10, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shuffle(Seeded(1), tt.in)
			assert.Equal(t, len(tt.in), len(got))
			assert.ElementsMatch(t, tt.in, got)
		})
	}
}

// stuck always returns max, so Fisher–Yates never swaps anything.
type stuck struct{ calls int }

func (s *stuck) Int(min, max int) int {
	s.calls++
	return max
}

func TestShuffleRetryIsBounded(t *testing.T) {
	g := &stuck{}
	got := Shuffle(g, []int{1, 2})

	assert.Equal(t, []int{1, 2}, got, "identity draws cannot produce a different order")
	assert.Equal(t, maxShuffleAttempts, g.calls)
}

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHexColor(t *testing.T) {
	g := Seeded(5)
	for range 100 {
		assert.Regexp(t, hexColor, HexColor(g))
	}
}
