// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// quantize converts a caller-supplied weight in [0, 1] into a length-P
// DigitPath plus the exact decimal value that path encodes, by truncating
// toward zero at P fractional digits.
//
// w == 1 is a special case: the largest path representable at precision P is
// (9,9,...,9), which encodes 1 - 10^-P, not 1. Per spec §4.1 this value is
// clamped to that all-nines path rather than rejected or overflowing into a
// (P+1)-digit path.
func quantize(w float64, precision int) (DigitPath, decimal.Decimal, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, decimal.Decimal{}, fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, w)
	}
	if w < 0 || w > 1 {
		return nil, decimal.Decimal{}, fmt.Errorf("%w: %v is outside [0, 1]", ErrInvalidWeight, w)
	}

	d := decimal.NewFromFloat(w)
	scaled := d.Shift(int32(precision)).Truncate(0)
	n := scaled.BigInt()

	maxUnits := new(big.Int).Sub(pow10(precision), big.NewInt(1))
	if n.Cmp(maxUnits) > 0 {
		n = maxUnits
	}

	path := make(DigitPath, precision)
	rem := new(big.Int).Set(n)
	ten := big.NewInt(10)
	digit := new(big.Int)
	for i := precision - 1; i >= 0; i-- {
		rem.DivMod(rem, ten, digit)
		path[i] = uint8(digit.Int64())
	}

	return path, decimal.NewFromBigInt(n, -int32(precision)), nil
}

var pow10Cache = map[int]*big.Int{}

func pow10(p int) *big.Int {
	if v, ok := pow10Cache[p]; ok {
		return v
	}
	v := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
	pow10Cache[p] = v
	return v
}
