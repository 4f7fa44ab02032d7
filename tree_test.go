// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkInsertUpdatesAncestors(t *testing.T) {
	root := newInternalNode()
	leaf := walkInsert(root, DigitPath{1, 2, 3}, mustDecimal("0.123"))

	require.True(t, leaf.isLeaf())
	require.Equal(t, 1, root.count)
	require.True(t, root.acc.Equal(mustDecimal("0.123")))

	mid := root.children[1]
	require.NotNil(t, mid)
	require.Equal(t, 1, mid.count)
	inner := mid.children[2]
	require.NotNil(t, inner)
	require.Equal(t, 1, inner.count)
	require.Same(t, leaf, inner.children[3])
}

func TestWalkInsertSharedPrefix(t *testing.T) {
	root := newInternalNode()
	walkInsert(root, DigitPath{1, 2}, mustDecimal("0.12"))
	walkInsert(root, DigitPath{1, 3}, mustDecimal("0.13"))

	require.Equal(t, 2, root.count)
	require.True(t, root.acc.Equal(mustDecimal("0.25")))

	shared := root.children[1]
	require.Equal(t, 2, shared.count)
	require.True(t, shared.acc.Equal(mustDecimal("0.25")))
	require.NotNil(t, shared.children[2])
	require.NotNil(t, shared.children[3])
}

func TestWalkRemoveCollapsesEmptySubtree(t *testing.T) {
	root := newInternalNode()
	leaf := walkInsert(root, DigitPath{4, 5}, mustDecimal("0.45"))
	leaf.leaf.insert(1)
	idCopy := DigitPath{4, 5}.clone()

	removed := walkRemove(root, idCopy, mustDecimal("0.45"))
	removed.leaf.remove(1)

	require.Equal(t, 0, root.count)
	require.True(t, root.acc.IsZero())
	require.Nil(t, root.children[4])
}

func TestWalkRemoveKeepsSiblingAlive(t *testing.T) {
	root := newInternalNode()
	leafA := walkInsert(root, DigitPath{1, 2}, mustDecimal("0.12"))
	leafA.leaf.insert(1)
	leafB := walkInsert(root, DigitPath{1, 3}, mustDecimal("0.13"))
	leafB.leaf.insert(2)

	removed := walkRemove(root, DigitPath{1, 2}, mustDecimal("0.12"))
	removed.leaf.remove(1)

	require.Equal(t, 1, root.count)
	require.True(t, root.acc.Equal(mustDecimal("0.13")))
	mid := root.children[1]
	require.NotNil(t, mid)
	require.Nil(t, mid.children[2])
	require.NotNil(t, mid.children[3])
}

func TestWalkRemoveBulkSingleAggregateDecrement(t *testing.T) {
	root := newInternalNode()
	leaf := walkInsert(root, DigitPath{7, 7}, mustDecimal("0.77"))
	leaf.leaf.insert(1)
	walkInsert(root, DigitPath{7, 7}, mustDecimal("0.77")).leaf.insert(2)
	walkInsert(root, DigitPath{7, 7}, mustDecimal("0.77")).leaf.insert(3)

	require.Equal(t, 3, root.count)

	removed := walkRemoveBulk(root, DigitPath{7, 7}, 3, mustDecimal("0.77"))
	require.Equal(t, 0, root.count)
	require.True(t, root.acc.IsZero())
	require.NotNil(t, removed)
	require.Nil(t, root.children[7])
}
