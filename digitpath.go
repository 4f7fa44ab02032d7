// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "github.com/shopspring/decimal"

// DigitPath is the length-P sequence of decimal digits a quantized weight
// maps to. path[0] is the most significant fractional digit (tenths),
// path[len(path)-1] the least significant (the Pth place).
type DigitPath []uint8

// intValue reconstructs the path's digits as a plain integer, e.g. (1,2,3)
// -> 123. It always fits in an int64: the longest path spec.md allows is 18
// digits, and 999999999999999999 is still below math.MaxInt64.
func (p DigitPath) intValue() int64 {
	n := int64(0)
	for _, d := range p {
		n = n*10 + int64(d)
	}
	return n
}

// value reconstructs the exact quantized decimal weight this path encodes:
// Σ path[i] · 10^-(i+1).
func (p DigitPath) value() decimal.Decimal {
	return decimal.New(p.intValue(), -int32(len(p)))
}

func (p DigitPath) equal(other DigitPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// clone returns an independent copy, since DigitPath values are stored by
// reference in the IdTable and must survive the caller reusing a slice.
func (p DigitPath) clone() DigitPath {
	out := make(DigitPath, len(p))
	copy(out, p)
	return out
}
