// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// SelectAndRemove performs a single weighted random draw and removes the
// chosen item, modeling one step of Wallenius-style sequential sampling
// (spec §4.4.4). It returns (id, quantizedWeight, true), or (0, 0, false) if
// the index is empty or its total weight is zero (only zero-weight items
// remain, none of which can be drawn).
func (idx *Index) SelectAndRemove() (uint64, decimal.Decimal, bool) {
	total := idx.root.acc
	if idx.root.count == 0 || total.IsZero() {
		return 0, decimal.Decimal{}, false
	}

	u := idx.rng.uniformDecimal(total, int32(idx.precision))
	leaf, path, residual := descend(idx.root, u, idx.precision)
	weight := path.value()

	rank := rankFromResidual(residual, path, leaf.leaf.len())
	id, err := leaf.leaf.selectRank(rank)
	if err != nil {
		// Broken invariant, never surfaced to the caller per spec §7: fall
		// back to rank 0, which is valid on any non-empty bin.
		id, _ = leaf.leaf.selectRank(0)
	}

	removedLeaf := walkRemove(idx.root, path, weight)
	removedLeaf.leaf.remove(id)
	delete(idx.ids, id)

	idx.log.Debug("select_and_remove", "id", id, "path", path)
	return id, weight, true
}

// descend walks the tree from root, selecting one digit per level by
// comparing the running target u against each existing child's accumulated
// weight in ascending digit order — the tie-break spec §4.4.4 requires so two
// implementations fed the same random stream agree. It returns the leaf
// reached, the digit path taken, and the residual target now relative to the
// leaf's own [0, leaf.acc) range.
func descend(root *node, u decimal.Decimal, precision int) (*node, DigitPath, decimal.Decimal) {
	cur := root
	path := make(DigitPath, 0, precision)
	for depth := 0; depth < precision; depth++ {
		digit, next, remainder, ok := selectChild(cur, u)
		if !ok {
			// Overshoot: spec §9 permits this only at the exact upper
			// boundary (unreachable under exact decimal arithmetic, kept as
			// a defensive fallback). Descend into the last non-empty child
			// at its lowest rank.
			digit, next = lastNonEmptyChild(cur)
			remainder = decimal.Zero
		}
		path = append(path, uint8(digit))
		u = remainder
		cur = next
	}
	return cur, path, u
}

// selectChild finds the first existing, non-zero-weight child (ascending
// digit order) whose accumulated weight exceeds u, returning the residual
// target relative to that child's own range. ok is false if every child's
// weight was exhausted without a match (the §9 overshoot case).
func selectChild(n *node, u decimal.Decimal) (digit int, child *node, remainder decimal.Decimal, ok bool) {
	for d := 0; d < 10; d++ {
		c := n.children[d]
		if c == nil || c.acc.IsZero() {
			continue
		}
		if u.LessThan(c.acc) {
			return d, c, u, true
		}
		u = u.Sub(c.acc)
	}
	return 0, nil, decimal.Decimal{}, false
}

func lastNonEmptyChild(n *node) (int, *node) {
	for d := 9; d >= 0; d-- {
		if child := n.children[d]; child != nil && !child.acc.IsZero() {
			return d, child
		}
	}
	return -1, nil
}

// rankFromResidual converts a leaf-relative residual into a bin rank per
// spec §4.4.4 step 4: since all items in a leaf share the identical
// quantized weight w_p, the residual is a uniform draw in [0, |Bin|·w_p), and
// the rank is floor(residual / w_p), clamped to the bin's last valid rank.
func rankFromResidual(residual decimal.Decimal, path DigitPath, binLen int) int {
	maxRank := binLen - 1
	if maxRank < 0 {
		maxRank = 0
	}

	w := path.intValue()
	if w == 0 || residual.Sign() < 0 {
		return 0
	}

	scale := int32(len(path))
	units := residual.Shift(scale).BigInt()
	rankBig := new(big.Int).Div(units, big.NewInt(w))

	if !rankBig.IsInt64() || rankBig.Int64() > int64(maxRank) {
		return maxRank
	}
	return int(rankBig.Int64())
}
