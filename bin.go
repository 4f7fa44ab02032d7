// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// bin is the compressed item-id set at a leaf, backed by a Roaring bitmap —
// the "compressed integer set" the glossary calls out by name. It never
// itself stores a weight; every id in a bin shares the leaf's digit path, and
// the leaf's owning node already tracks the aggregate.
type bin struct {
	ids *roaring64.Bitmap
}

func newBin() *bin {
	return &bin{ids: roaring64.New()}
}

// insert adds id, returning whether the cardinality changed.
func (b *bin) insert(id uint64) bool {
	return b.ids.CheckedAdd(id)
}

// remove deletes id, returning whether the cardinality changed. Absence is
// not an error at this level.
func (b *bin) remove(id uint64) bool {
	return b.ids.CheckedRemove(id)
}

func (b *bin) len() int {
	return int(b.ids.GetCardinality())
}

func (b *bin) contains(id uint64) bool {
	return b.ids.Contains(id)
}

// selectRank returns the id at rank r under the bin's stable ascending
// numeric order. Roaring's Select runs in O(log n) over its internal
// container chunks, meeting the complexity floor in spec §4.2.
func (b *bin) selectRank(rank int) (uint64, error) {
	if rank < 0 || uint64(rank) >= b.ids.GetCardinality() {
		return 0, errOutOfRange
	}
	return b.ids.Select(uint64(rank))
}

// removeMany removes every id present in toRemove, implemented as a single
// set-difference rather than a loop of individual removals, and reports how
// many ids were actually present.
func (b *bin) removeMany(toRemove *roaring64.Bitmap) int {
	before := b.ids.GetCardinality()
	b.ids.AndNot(toRemove)
	after := b.ids.GetCardinality()
	return int(before - after)
}

func (b *bin) isEmpty() bool {
	return b.ids.IsEmpty()
}

// forEach enumerates ids in ascending numeric order.
func (b *bin) forEach(f func(id uint64)) {
	it := b.ids.Iterator()
	for it.HasNext() {
		f(it.Next())
	}
}
