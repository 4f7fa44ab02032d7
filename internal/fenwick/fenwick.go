// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fenwick is a benchmark competitor for the Digit-Bin Index, not a
// production code path. It implements the O(log N) Fenwick-tree (binary
// indexed tree) weighted selection the original Rust prototype benchmarked
// against in benches/selection_benchmark.rs, ported to Go so the package's
// own benchmarks can reproduce that comparison.
package fenwick

import "math/rand"

// Tree is a weighted-selection Fenwick tree over a fixed-size population
// indexed 0..n-1. Unlike the Digit-Bin Index it never bins weights: every
// comparison is exact, at the cost of O(log n) per operation instead of
// O(P).
type Tree struct {
	sums     []float64
	original []float64
}

// New returns a Tree sized for n items, all initially absent (weight 0).
func New(n int) *Tree {
	return &Tree{
		sums:     make([]float64, n+1),
		original: make([]float64, n),
	}
}

// Add applies delta to index's weight. The caller is expected to call this
// once per index with the item's full weight to populate the tree, and again
// with the negated weight to remove it.
func (t *Tree) Add(index int, delta float64) {
	if t.original[index] == 0 {
		t.original[index] = delta
	}
	for i := index + 1; i < len(t.sums); i += i & (-i) {
		t.sums[i] += delta
	}
}

// find returns the index whose cumulative prefix sum first exceeds target.
func (t *Tree) find(target float64) int {
	idx := 0
	bitMask := 1
	for bitMask*2 <= len(t.sums) {
		bitMask *= 2
	}
	for bitMask != 0 {
		next := idx + bitMask
		if next < len(t.sums) && target >= t.sums[next] {
			target -= t.sums[next]
			idx = next
		}
		bitMask /= 2
	}
	return idx
}

// TotalWeight sums the original per-item weights.
func (t *Tree) TotalWeight() float64 {
	total := 0.0
	for _, w := range t.original {
		total += w
	}
	return total
}

// SelectAndRemove draws one index weighted by its current remaining weight
// and zeroes it out, the Wallenius-style competitor to Index.SelectAndRemove.
func (t *Tree) SelectAndRemove(currentTotal float64) (int, bool) {
	if currentTotal <= 0 {
		return 0, false
	}
	target := rand.Float64() * currentTotal //nolint:gosec // benchmark-only
	index := t.find(target)
	t.Add(index, -t.original[index])
	return index, true
}

// SelectManyAndRemove draws k distinct indices by pure rejection sampling and
// zeroes out each one's weight, the Fisher-style competitor to
// Index.SelectManyAndRemove.
func (t *Tree) SelectManyAndRemove(k int) (map[int]struct{}, bool) {
	if k > len(t.original) {
		return nil, false
	}
	total := t.TotalWeight()
	selected := make(map[int]struct{}, k)
	if total <= 0 {
		return selected, true
	}
	for len(selected) < k {
		target := rand.Float64() * total //nolint:gosec // benchmark-only
		idx := t.find(target)
		if _, ok := selected[idx]; ok {
			continue
		}
		selected[idx] = struct{}{}
	}
	for idx := range selected {
		t.Add(idx, -t.original[idx])
	}
	return selected, true
}
