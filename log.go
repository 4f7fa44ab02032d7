// Copyright (C) 2024, Digit-Bin Index Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package digitbin

import "go.uber.org/zap"

// Logger is the diagnostic tracing surface the index writes to. It never
// influences control flow or error semantics — spec §1 lists logging as
// caller-facing packaging, out of scope for the index's own behavior — this
// exists purely so callers embedding the index in a larger service can see
// what it's doing, the way the teacher injects a logger into nearly every
// long-lived component it owns.
type Logger interface {
	// Debug traces per-operation events: add, remove, and the items each
	// draw removes.
	Debug(msg string, kv ...any)
	// Verbo traces per-draw detail: the oversample rounds of a batch draw.
	// It is the noisiest level, named after the teacher's logging.Verbo.
	Verbo(msg string, kv ...any)
}

// NewZapLogger adapts a *zap.Logger to the Logger interface.
func NewZapLogger(z *zap.Logger) Logger {
	return &zapLogger{z: z}
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Debug(msg string, kv ...any) {
	l.z.Sugar().Debugw(msg, kv...)
}

func (l *zapLogger) Verbo(msg string, kv ...any) {
	l.z.Sugar().Debugw(msg, kv...)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Verbo(string, ...any) {}
