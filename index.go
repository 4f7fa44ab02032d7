// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package digitbin implements the Digit-Bin Index: a radix-over-
// decimal-digits tree over a dynamic collection of weighted items,
// supporting O(P) weighted draw-with-removal (Wallenius-style) and
// simultaneous draw-of-k-distinct-with-removal (Fisher-style), for
// populations where probabilities are empirical and precision beyond a
// handful of decimal places is meaningless.
package digitbin

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	minPrecision = 1
	maxPrecision = 18
)

// Index is the Digit-Bin Index: a radix-over-decimal-digits tree over a
// dynamic collection of weighted items, supporting weighted draw-with-removal
// both singly (SelectAndRemove) and in batches of k distinct items
// (SelectManyAndRemove).
//
// An Index is single-threaded: every method assumes exclusive access, as
// documented in spec §5. There is no internal locking.
type Index struct {
	root      *node
	ids       map[uint64]DigitPath
	precision int
	rng       *rng
	log       Logger
}

// New creates an Index at the given precision (number of decimal places
// weights are quantized to, 1..18) with an empty tree and IdTable.
func New(precision int, opts ...Option) (*Index, error) {
	if precision < minPrecision || precision > maxPrecision {
		return nil, fmt.Errorf("%w: %d (must be in [%d, %d])", ErrInvalidPrecision, precision, minPrecision, maxPrecision)
	}

	idx := &Index{
		root:      newInternalNode(),
		ids:       make(map[uint64]DigitPath),
		precision: precision,
		rng:       newRNG(NewSource()),
		log:       noopLogger{},
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx, nil
}

// Add inserts id with the given weight (a decimal value in [0, 1],
// truncated toward zero to the index's precision). Returns ErrDuplicateID if
// id is already present, ErrInvalidWeight if weight is outside [0, 1] or not
// finite. Neither error mutates the index.
func (idx *Index) Add(id uint64, weight float64) error {
	if _, exists := idx.ids[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	path, quantized, err := quantize(weight, idx.precision)
	if err != nil {
		return err
	}

	leaf := walkInsert(idx.root, path, quantized)
	leaf.leaf.insert(id)
	idx.ids[id] = path

	idx.log.Debug("add", "id", id, "path", path)
	return nil
}

// Remove deletes id from the index and returns the quantized weight it was
// stored under. Returns ErrNotFound if id is not present; the index is
// unchanged in that case.
func (idx *Index) Remove(id uint64) (decimal.Decimal, error) {
	path, exists := idx.ids[id]
	if !exists {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	weight := path.value()
	leaf := walkRemove(idx.root, path, weight)
	leaf.leaf.remove(id)
	delete(idx.ids, id)

	idx.log.Debug("remove", "id", id, "path", path)
	return weight, nil
}

// Contains reports whether id is currently present.
func (idx *Index) Contains(id uint64) bool {
	_, ok := idx.ids[id]
	return ok
}

// Count returns the number of live items.
func (idx *Index) Count() int {
	return idx.root.count
}

// TotalWeight returns the sum of all quantized weights currently held.
func (idx *Index) TotalWeight() decimal.Decimal {
	return idx.root.acc
}

// Precision returns the configured precision P.
func (idx *Index) Precision() int {
	return idx.precision
}

// Weight returns the quantized weight id is stored under, and whether id is
// present.
func (idx *Index) Weight(id uint64) (decimal.Decimal, bool) {
	path, ok := idx.ids[id]
	if !ok {
		return decimal.Decimal{}, false
	}
	return path.value(), true
}

// ForEach calls f once per live item, in unspecified order. f must not call
// back into the index: this is a read-only enumeration over the live
// IdTable, not a tree walk, and mutating during iteration is undefined.
func (idx *Index) ForEach(f func(id uint64, weight decimal.Decimal)) {
	for id, path := range idx.ids {
		f(id, path.value())
	}
}
