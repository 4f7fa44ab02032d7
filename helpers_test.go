// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "github.com/shopspring/decimal"

// mustDecimal parses a decimal literal for test assertions, panicking on a
// malformed literal rather than threading an error return through every
// caller.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fixedSource is a deterministic Source for tests that need a reproducible
// draw sequence: each call to Uint64 returns the next value of vals, looping
// once exhausted.
type fixedSource struct {
	vals []uint64
	pos  int
}

func newFixedSource(vals ...uint64) *fixedSource {
	return &fixedSource{vals: vals}
}

func (f *fixedSource) Uint64() uint64 {
	v := f.vals[f.pos%len(f.vals)]
	f.pos++
	return v
}
