// Package scalar provides the numeric magnitudes used by dimensioned
// quantities: fixed precision (float64), arbitrary precision
// (math/big.Float at a caller-chosen working width), and both flavors
// augmented with a correlated-uncertainty gradient for first-order
// error propagation.
//
// Binary operations promote their operands to the strongest kind
// present before computing, so a high-precision or uncertainty-bearing
// operand is never silently downgraded. Kind selection is symmetric in
// operand order.
package scalar

// Kind enumerates the magnitude representations, ordered by precision
// strength: a binary operation yields the join of its operand kinds.
type Kind uint8

const (
	// KindFixed is a plain float64 magnitude.
	KindFixed Kind = iota
	// KindMeasured is a float64 magnitude with an uncertainty gradient.
	KindMeasured
	// KindBig is an arbitrary-precision magnitude.
	KindBig
	// KindBigMeasured is an arbitrary-precision magnitude with an
	// uncertainty gradient.
	KindBigMeasured
)

const (
	kindMeasuredBit = 1 << 0
	kindBigBit      = 1 << 1
)

func kindOf(big, measured bool) Kind {
	var k Kind
	if measured {
		k |= kindMeasuredBit
	}
	if big {
		k |= kindBigBit
	}
	return k
}

// Arbitrary reports whether the kind uses arbitrary precision.
func (k Kind) Arbitrary() bool { return k&kindBigBit != 0 }

// Measured reports whether the kind carries an uncertainty gradient.
func (k Kind) Measured() bool { return k&kindMeasuredBit != 0 }

// Join returns the strongest kind among k and o. Precision and
// uncertainty combine independently: joining a measured fixed value
// with a plain arbitrary-precision value yields KindBigMeasured.
func (k Kind) Join(o Kind) Kind {
	return kindOf(k.Arbitrary() || o.Arbitrary(), k.Measured() || o.Measured())
}

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindMeasured:
		return "measured"
	case KindBig:
		return "big"
	case KindBigMeasured:
		return "big-measured"
	}
	return "unknown"
}
