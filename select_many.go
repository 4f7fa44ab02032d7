// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/btree"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
)

// maxOversampleFactor bounds the per-round candidate batch at 2k, the
// memory ceiling spec §4.4.5 step 2b requires.
const maxOversampleFactor = 2

// SelectManyAndRemove draws k distinct items weighted without replacement
// and removes all of them atomically, modeling one Fisher-style simultaneous
// draw (spec §4.4.5). If the current population is smaller than k it returns
// (nil, false) — never a partial set. SelectManyAndRemove(0) returns an
// empty, non-nil slice and true.
func (idx *Index) SelectManyAndRemove(k int) ([]uint64, bool) {
	if k == 0 {
		return []uint64{}, true
	}
	n := idx.root.count
	if n < k {
		return nil, false
	}

	result := roaring64.New()
	roundSeen := make(map[uint64]struct{}, 2*k)
	selectedWeight := decimal.Zero
	for int(result.GetCardinality()) < k {
		// Items already in result are still physically in the tree (they
		// are removed only once, in bulk, after this loop), so
		// idx.root.acc alone cannot detect exhaustion: it still counts
		// their weight. The pool of weight still available to a *new* pick
		// is root.acc with that already-selected weight subtracted out; once
		// that reaches zero, every undrawn item is zero-weight and can never
		// be reached by selectChild, so k distinct picks cannot be
		// completed. Per spec §7 this is never a partial result.
		if idx.root.acc.Sub(selectedWeight).IsZero() {
			return nil, false
		}

		need := k - int(result.GetCardinality())
		remaining := n - int(result.GetCardinality())
		if remaining <= 0 {
			remaining = 1
		}
		oversample := (need*n + remaining - 1) / remaining // ceil(need*N/remaining)
		if oversample < need {
			oversample = need
		}
		if oversample > maxOversampleFactor*k {
			oversample = maxOversampleFactor * k
		}

		idx.log.Verbo("select_many_and_remove: oversample round", "need", need, "oversample", oversample)

		for i := 0; i < oversample && int(result.GetCardinality()) < k; i++ {
			u := idx.rng.uniformDecimal(idx.root.acc, int32(idx.precision))
			leaf, path, residual := descend(idx.root, u, idx.precision)
			rank := rankFromResidual(residual, path, leaf.leaf.len())
			id, err := leaf.leaf.selectRank(rank)
			if err != nil {
				continue
			}
			if _, ok := roundSeen[id]; ok {
				continue // resample on an intra-round collision
			}
			if result.Contains(id) {
				continue // resample on collision, per spec §4.4.5 step 2b
			}
			roundSeen[id] = struct{}{}
			result.Add(id)
			selectedWeight = selectedWeight.Add(path.value())
		}
		maps.Clear(roundSeen)
	}

	idx.removeSet(result)
	idx.log.Debug("select_many_and_remove", "k", k, "selected", result.GetCardinality())
	return result.ToArray(), true
}

// pathGroup is one distinct digit path touched by a batch removal, and the
// ids under it that are being removed. Grouping by path lets removeSet apply
// a single aggregated ancestor decrement per path instead of one per id.
type pathGroup struct {
	path DigitPath
	ids  *roaring64.Bitmap
}

func lessPathGroup(a, b *pathGroup) bool {
	return string(a.path) < string(b.path)
}

// removeSet removes every id in ids from the index via the single
// ancestor-aware bulk pass spec §4.4.5 step 3 describes: ids are grouped by
// their IdTable path in a btree ordered by ascending digit path — the same
// tie-break order §4.4.4 uses for single draws — so the aggregated
// decrements are applied deterministically path by path.
func (idx *Index) removeSet(ids *roaring64.Bitmap) {
	groups := btree.NewG(32, lessPathGroup)

	it := ids.Iterator()
	for it.HasNext() {
		id := it.Next()
		path := idx.ids[id]
		key := &pathGroup{path: path}
		if existing, ok := groups.Get(key); ok {
			existing.ids.Add(id)
		} else {
			bm := roaring64.New()
			bm.Add(id)
			groups.ReplaceOrInsert(&pathGroup{path: path, ids: bm})
		}
	}

	groups.Ascend(func(g *pathGroup) bool {
		count := int(g.ids.GetCardinality())
		leaf := walkRemoveBulk(idx.root, g.path, count, g.path.value())
		leaf.leaf.removeMany(g.ids)
		gi := g.ids.Iterator()
		for gi.HasNext() {
			delete(idx.ids, gi.Next())
		}
		return true
	})
}
