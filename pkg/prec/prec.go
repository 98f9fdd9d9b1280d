// Package prec holds the ambient working precision for
// arbitrary-precision evaluation. An Env is owned by one goroutine of
// use; concurrent computations wanting different precisions each carry
// their own Env rather than sharing a process-global setting.
package prec

import "github.com/leapstack-labs/codata/pkg/scalar"

// DefaultBits is the working precision used when no Env is supplied.
const DefaultBits uint = 256

// MinBits is the smallest accepted working precision: the float64
// mantissa width, below which fixed/arbitrary consistency breaks.
const MinBits = scalar.FixedPrec

// Env is a scoped working-precision setting. The zero value and the
// nil pointer both read as DefaultBits, so accessors may be called
// with a nil Env.
type Env struct {
	bits uint
}

// NewEnv returns an Env with the given working precision, clamped to
// MinBits.
func NewEnv(bits uint) *Env {
	e := &Env{}
	e.SetBits(bits)
	return e
}

// Bits returns the current working precision.
func (e *Env) Bits() uint {
	if e == nil || e.bits == 0 {
		return DefaultBits
	}
	return e.bits
}

// SetBits changes the working precision, clamping to MinBits.
func (e *Env) SetBits(bits uint) {
	if bits < MinBits {
		bits = MinBits
	}
	e.bits = bits
}

// With runs fn with the working precision overridden to bits,
// restoring the previous setting on every exit path, panics included.
func (e *Env) With(bits uint, fn func() error) error {
	prev := e.bits
	e.SetBits(bits)
	defer func() { e.bits = prev }()
	return fn()
}
