package random

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// maxShuffleAttempts bounds how often [Shuffle] redraws a permutation that
// came out identical to its input.
const maxShuffleAttempts = 100

// Generator draws uniformly distributed integers.
type Generator interface {
	// Int returns an integer in [min, max], both bounds inclusive.
	// Callers guarantee min <= max.
	Int(min, max int) int
}

type ambient struct{}

// Ambient returns a Generator backed by the runtime-seeded global source of
// math/rand/v2. Every call is an independent, non-reproducible draw.
func Ambient() Generator { return ambient{} }

func (ambient) Int(min, max int) int { return min + rand.IntN(max-min+1) }

// Source is a deterministic Generator. The same seed always yields the same
// sequence of draws. A Source is not safe for concurrent use.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// Seeded returns a deterministic Generator for seed.
func Seeded(seed uint64) *Source {
	return &Source{seed: seed, rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Int returns an integer in [min, max].
func (s *Source) Int(min, max int) int { return min + s.rng.IntN(max-min+1) }

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// SortedInts draws n integers in [min, max] and returns them in ascending order.
func SortedInts(g Generator, min, max, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = g.Int(min, max)
	}
	slices.Sort(out)
	return out
}

// Shuffle returns a Fisher–Yates permutation of s. The input is not modified.
//
// If the permutation is identical to s it is redrawn, up to a bounded number of
// attempts. Slices with fewer than two elements, or whose elements are all
// equal, are returned as an unchanged copy since no permutation can differ.
func Shuffle[S ~[]E, E comparable](g Generator, s S) S {
	out := slices.Clone(s)
	if len(s) <= 1 || allEqual(s) {
		return out
	}
	for range maxShuffleAttempts {
		copy(out, s)
		for i := len(out) - 1; i > 0; i-- {
			j := g.Int(0, i)
			out[i], out[j] = out[j], out[i]
		}
		if !slices.Equal(out, s) {
			break
		}
	}
	return out
}

func allEqual[E comparable](s []E) bool {
	for _, e := range s[1:] {
		if e != s[0] {
			return false
		}
	}
	return true
}

// HexColor returns a random 24-bit color formatted as "#rrggbb".
func HexColor(g Generator) string {
	return fmt.Sprintf("#%06x", g.Int(0, 0xFFFFFF))
}
