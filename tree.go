// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "github.com/shopspring/decimal"

// walkInsert walks from root along path, creating any missing internal node
// lazily, and applies (+1, +weight) to every node visited, including the
// leaf. It returns the leaf node; the caller still has to insert the id into
// the leaf's bin.
func walkInsert(root *node, path DigitPath, weight decimal.Decimal) *node {
	cur := root
	cur.update(1, weight)
	for depth, digit := range path {
		child := cur.children[digit]
		if child == nil {
			if depth == len(path)-1 {
				child = newLeafNode()
			} else {
				child = newInternalNode()
			}
			cur.children[digit] = child
		}
		child.update(1, weight)
		cur = child
	}
	return cur
}

// walkRemove walks from root along path, decrementing (-1, -weight) at every
// node visited, and collapses any node whose count falls to zero on the way
// back up by clearing its parent's child slot (spec §4.3). The root is never
// detached. It returns the leaf node that was visited (still a valid object
// even if now unlinked); the caller still has to remove the id from the
// leaf's bin.
func walkRemove(root *node, path DigitPath, weight decimal.Decimal) *node {
	return walkRemoveBulk(root, path, 1, weight)
}

// walkRemoveBulk generalizes walkRemove to the §4.4.5 bulk pass: count items
// sharing path are removed in one pass, applying a single aggregated
// decrement to each ancestor rather than count individual ones.
func walkRemoveBulk(root *node, path DigitPath, count int, unitWeight decimal.Decimal) *node {
	chain := make([]*node, len(path)+1)
	chain[0] = root
	for depth, digit := range path {
		chain[depth+1] = chain[depth].children[digit]
	}

	negWeight := unitWeight.Mul(decimal.NewFromInt(int64(count))).Neg()
	for _, n := range chain {
		n.update(-count, negWeight)
	}

	for depth := len(path); depth > 0; depth-- {
		if chain[depth].empty() {
			chain[depth-1].children[path[depth-1]] = nil
		}
	}

	return chain[len(chain)-1]
}
