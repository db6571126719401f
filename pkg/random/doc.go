// Package random provides the integer random source used by chart layout.
//
// Layout code never calls a global random function directly. It takes a
// [Generator], which has two implementations:
//
//   - [Ambient]: runtime-seeded, non-reproducible draws
//   - [Seeded]: a PCG stream that replays identically for the same seed
//
// Use the seeded variant for golden-output rendering and for callers that
// want the same chart across refreshes:
//
//	g := random.Seeded(42)
//	widths := random.SortedInts(g, 10, 100, 5)
//
// A [Source] carries mutable stream state. Create one per seed and per
// layout pass; do not share it between goroutines.
package random
