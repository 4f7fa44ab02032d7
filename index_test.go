// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadPrecision(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, ErrInvalidPrecision)
	_, err = New(19)
	require.ErrorIs(t, err, ErrInvalidPrecision)

	idx, err := New(1)
	require.NoError(t, err)
	require.Equal(t, 1, idx.Precision())
}

func TestAddRejectsDuplicateAndBadWeight(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)

	require.NoError(t, idx.Add(1, 0.5))
	require.ErrorIs(t, idx.Add(1, 0.6), ErrDuplicateID)
	require.ErrorIs(t, idx.Add(2, -0.1), ErrInvalidWeight)
	require.ErrorIs(t, idx.Add(2, 1.1), ErrInvalidWeight)
	require.Equal(t, 1, idx.Count())
}

func TestRemoveUnknownID(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)
	_, err = idx.Remove(99)
	require.ErrorIs(t, err, ErrNotFound)
}

// S1: empty index.
func TestScenarioS1EmptyIndex(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)

	require.Equal(t, 0, idx.Count())
	require.True(t, idx.TotalWeight().IsZero())

	_, _, ok := idx.SelectAndRemove()
	require.False(t, ok)

	got, ok := idx.SelectManyAndRemove(0)
	require.True(t, ok)
	require.Empty(t, got)

	_, ok = idx.SelectManyAndRemove(1)
	require.False(t, ok)
}

// S2: single item.
func TestScenarioS2SingleItem(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)
	require.NoError(t, idx.Add(42, 0.5))

	require.Equal(t, 1, idx.Count())
	require.True(t, idx.TotalWeight().Equal(mustDecimal("0.500")))

	id, weight, ok := idx.SelectAndRemove()
	require.True(t, ok)
	require.Equal(t, uint64(42), id)
	require.True(t, weight.Equal(mustDecimal("0.500")))
	require.Equal(t, 0, idx.Count())
}

// S3: quantization groups nearby weights into the same bin.
func TestScenarioS3Quantization(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)
	require.NoError(t, idx.Add(1, 0.12345))
	require.NoError(t, idx.Add(2, 0.12300))

	w1, ok := idx.Weight(1)
	require.True(t, ok)
	w2, ok := idx.Weight(2)
	require.True(t, ok)
	require.True(t, w1.Equal(mustDecimal("0.123")))
	require.True(t, w1.Equal(w2))
	require.True(t, idx.TotalWeight().Equal(mustDecimal("0.246")))

	leaf := descendPath(idx.root, DigitPath{1, 2, 3})
	require.NotNil(t, leaf)
	require.Equal(t, 2, leaf.count)
}

// S6: over-draw leaves state unchanged.
func TestScenarioS6OverDraw(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)
	for i := uint64(1); i <= 10; i++ {
		require.NoError(t, idx.Add(i, float64(i)/100))
	}
	totalBefore := idx.TotalWeight()

	got, ok := idx.SelectManyAndRemove(11)
	require.False(t, ok)
	require.Nil(t, got)
	require.Equal(t, 10, idx.Count())
	require.True(t, idx.TotalWeight().Equal(totalBefore))
}

// S7: the tree collapses to fully empty after add/remove, and accepts the
// same id again afterwards.
func TestScenarioS7Collapse(t *testing.T) {
	idx, err := New(3)
	require.NoError(t, err)
	require.NoError(t, idx.Add(7, 0.777))

	_, err = idx.Remove(7)
	require.NoError(t, err)

	require.Equal(t, 0, idx.root.count)
	require.True(t, idx.root.acc.IsZero())
	for _, c := range idx.root.children {
		require.Nil(t, c)
	}

	require.NoError(t, idx.Add(7, 0.777))
	require.Equal(t, 1, idx.Count())
}

func TestForEachVisitsEveryLiveItem(t *testing.T) {
	idx, err := New(2)
	require.NoError(t, err)
	require.NoError(t, idx.Add(1, 0.10))
	require.NoError(t, idx.Add(2, 0.20))

	seen := map[uint64]bool{}
	idx.ForEach(func(id uint64, weight decimal.Decimal) {
		seen[id] = true
	})
	require.Len(t, seen, 2)
	require.True(t, seen[1])
	require.True(t, seen[2])
}

// descendPath walks a fixed digit path from n without consuming randomness,
// for assertions against the raw tree shape.
func descendPath(n *node, path DigitPath) *node {
	cur := n
	for _, d := range path {
		cur = cur.children[d]
		if cur == nil {
			return nil
		}
	}
	return cur
}
