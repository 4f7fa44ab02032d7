// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

// Option configures an Index at construction time. There are only two
// optional knobs, so a small set of functional options reads more naturally
// here than a config struct — the same shape the teacher reaches for
// elsewhere in its utils packages (e.g. logging.NewLogger's variadic cores).
type Option func(*Index)

// WithSource injects a Source for reproducible draws. Without it, New seeds
// a process-default MT19937 stream.
func WithSource(src Source) Option {
	return func(idx *Index) {
		idx.rng = newRNG(src)
	}
}

// WithLogger injects a Logger for diagnostic tracing. Without it, the index
// logs nothing.
func WithLogger(l Logger) Option {
	return func(idx *Index) {
		idx.log = l
	}
}
