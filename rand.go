// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import (
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mathext/prng"
)

// Source is a uniform bit stream. An index never needs more than this from
// its random-number collaborator; uniform integers and uniform decimals are
// both derived from it below.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// NewSource returns a default, time-seeded Source. Callers that need
// reproducible draws should build their own Source (any type satisfying the
// one-method interface) and pass it via WithSource.
func NewSource() Source {
	s := prng.NewMT19937()
	s.Seed(uint64(time.Now().UnixNano()))
	return s
}

// rng adapts a Source into the bounded-draw helpers the index needs.
type rng struct {
	src Source
}

func newRNG(src Source) *rng {
	return &rng{src: src}
}

// uint64Inclusive returns a pseudo-random number in [0, n], unbiased by
// rejecting draws that would fold unevenly into the range.
func (r *rng) uint64Inclusive(n uint64) uint64 {
	switch {
	case n&(n+1) == 0:
		return r.src.Uint64() & n
	case n > math.MaxInt64:
		v := r.src.Uint64()
		for v > n {
			v = r.src.Uint64()
		}
		return v
	default:
		maximum := (uint64(1) << 63) - 1 - (uint64(1)<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

func (r *rng) uint63() uint64 {
	return r.src.Uint64() & math.MaxInt64
}

// uniformInt returns a pseudo-random number in [0, n).
func (r *rng) uniformInt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return r.uint64Inclusive(n - 1)
}

// uniformBigInt returns a pseudo-random big integer in [0, bound), by
// rejection-sampling random byte strings the width of bound, the same
// rejection idea uint64Inclusive uses, widened for totals that overflow a
// uint64 (large populations at high precision).
func (r *rng) uniformBigInt(bound *big.Int) *big.Int {
	if bound.Sign() <= 0 {
		return new(big.Int)
	}
	if bound.IsUint64() {
		if n := bound.Uint64(); n > 0 {
			return new(big.Int).SetUint64(r.uniformInt(n))
		}
	}

	bitLen := bound.BitLen()
	byteLen := (bitLen + 7) / 8
	var mask byte = 0xff
	if extra := bitLen % 8; extra != 0 {
		mask = byte(1<<extra - 1)
	}
	buf := make([]byte, byteLen)
	result := new(big.Int)
	for {
		r.fillRandom(buf)
		buf[0] &= mask
		result.SetBytes(buf)
		if result.Cmp(bound) < 0 {
			return result
		}
	}
}

func (r *rng) fillRandom(buf []byte) {
	for i := 0; i < len(buf); {
		v := r.src.Uint64()
		for j := 0; j < 8 && i < len(buf); j++ {
			buf[i] = byte(v)
			v >>= 8
			i++
		}
	}
}

// uniformDecimal returns a pseudo-random decimal in [0, bound), treating
// bound as an exact multiple of 10^-scale (true for every accumulated weight
// in this package, since quantized weights never carry more than P
// fractional digits and decimal addition introduces no drift). The draw is
// performed over the integer unit count so no floating point participates,
// per spec §9.
func (r *rng) uniformDecimal(bound decimal.Decimal, scale int32) decimal.Decimal {
	units := bound.Shift(scale).BigInt()
	if units.Sign() <= 0 {
		return decimal.Zero
	}
	draw := r.uniformBigInt(units)
	return decimal.NewFromBigInt(draw, -scale)
}
