// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "github.com/shopspring/decimal"

// node is a single level of the radix-over-decimal-digits tree. Internal
// nodes (depth < P) hold up to 10 children, indexed by the next digit;
// leaf nodes (depth == P) hold a bin instead. The fixed, small fan-out is
// scanned linearly rather than hashed, the same trade-off the teacher's
// weighted-random-select tree makes with its 8-way wrsNode.
type node struct {
	count    int
	acc      decimal.Decimal
	children [10]*node // nil at leaf depth
	leaf     *bin      // nil above leaf depth
}

func newInternalNode() *node {
	return &node{acc: decimal.Zero}
}

func newLeafNode() *node {
	return &node{acc: decimal.Zero, leaf: newBin()}
}

func (n *node) isLeaf() bool {
	return n.leaf != nil
}

// update adjusts this node's aggregates in place.
func (n *node) update(deltaCount int, deltaAcc decimal.Decimal) {
	n.count += deltaCount
	n.acc = n.acc.Add(deltaAcc)
}

// empty reports whether this node's subtree count has returned to zero and
// it is therefore eligible for detachment (spec §4.3).
func (n *node) empty() bool {
	return n.count == 0
}
