// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "errors"

// Sentinel errors returned by the public surface. Each is wrapped with
// fmt.Errorf("%w: ...") at the call site so errors.Is keeps working for
// callers while the message carries the offending value.
var (
	// ErrInvalidPrecision is returned by New when precision is outside [1, 18].
	ErrInvalidPrecision = errors.New("digitbin: invalid precision")

	// ErrInvalidWeight is returned by Add when the weight is not a finite
	// value in [0, 1].
	ErrInvalidWeight = errors.New("digitbin: invalid weight")

	// ErrDuplicateID is returned by Add when the id is already present.
	ErrDuplicateID = errors.New("digitbin: duplicate id")

	// ErrNotFound is returned by Remove when the id is not present.
	ErrNotFound = errors.New("digitbin: not found")
)

// errOutOfRange signals a broken internal invariant: a rank or cumulative
// weight computed during a draw fell outside the range the tree reports for
// itself. It should never escape a public method; if it does, it indicates a
// bug in the aggregate bookkeeping, not a caller error.
var errOutOfRange = errors.New("digitbin: out of range (internal)")
