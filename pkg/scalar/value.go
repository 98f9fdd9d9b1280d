package scalar

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/leapstack-labs/codata/pkg/uncert"
)

// FixedPrec is the mantissa width of the fixed-precision representation.
const FixedPrec uint = 53

// Value is a magnitude in one of the four kinds. Implementations are
// sealed; construct values with Float, FromBig, ParseBig, Measure, or
// MeasureBig. Values are immutable: accessors return copies of any
// internal big.Float state.
type Value interface {
	// Kind reports the representation of the value.
	Kind() Kind
	// Float64 renders the central value at fixed precision.
	Float64() float64
	// Prec is the working precision in bits (FixedPrec for the
	// float64-backed kinds).
	Prec() uint

	sealed()
}

type fixedVal float64

type bigVal struct {
	f *big.Float
}

type measuredVal struct {
	val float64
	// grad maps each uncertainty source to its sigma-scaled partial
	// derivative. Entries that cancel to exactly zero are pruned.
	grad map[uncert.Source]float64
}

type bigMeasuredVal struct {
	val  *big.Float
	grad map[uncert.Source]*big.Float
}

// Float returns a fixed-precision value.
func Float(x float64) Value { return fixedVal(x) }

// FromBig returns an arbitrary-precision value. The argument is copied
// at its own precision.
func FromBig(f *big.Float) Value {
	return bigVal{f: new(big.Float).Copy(f)}
}

// ParseBig parses a decimal literal at the requested working
// precision. This is the exact-value generator for constants given as
// decimal strings: re-parsing at a wider precision yields more correct
// bits of the same mathematical value.
func ParseBig(s string, bits uint) (Value, error) {
	f, _, err := big.ParseFloat(s, 10, bits, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal literal %q: %w", s, err)
	}
	return bigVal{f: f}, nil
}

// MustParseBig is ParseBig for literals known to be well-formed.
func MustParseBig(s string, bits uint) Value {
	v, err := ParseBig(s, bits)
	if err != nil {
		panic(err)
	}
	return v
}

// Measure returns a fixed-precision measurement term with standard
// uncertainty sigma attributed to src. A zero sigma yields a term with
// an empty gradient: it contributes exactly nothing downstream and no
// source is recorded.
func Measure(val, sigma float64, src uncert.Source) Value {
	m := measuredVal{val: val}
	if sigma != 0 && src != uncert.None {
		m.grad = map[uncert.Source]float64{src: sigma}
	}
	return m
}

// MeasureBig is Measure at arbitrary precision. Arguments are copied.
func MeasureBig(val, sigma *big.Float, src uncert.Source) Value {
	m := bigMeasuredVal{val: new(big.Float).Copy(val)}
	if sigma != nil && sigma.Sign() != 0 && src != uncert.None {
		m.grad = map[uncert.Source]*big.Float{src: new(big.Float).Copy(sigma)}
	}
	return m
}

func (v fixedVal) Kind() Kind       { return KindFixed }
func (v fixedVal) Float64() float64 { return float64(v) }
func (v fixedVal) Prec() uint       { return FixedPrec }
func (v fixedVal) sealed()          {}

func (v bigVal) Kind() Kind { return KindBig }
func (v bigVal) Float64() float64 {
	f, _ := v.f.Float64()
	return f
}
func (v bigVal) Prec() uint { return v.f.Prec() }
func (v bigVal) sealed()    {}

func (v measuredVal) Kind() Kind       { return KindMeasured }
func (v measuredVal) Float64() float64 { return v.val }
func (v measuredVal) Prec() uint       { return FixedPrec }
func (v measuredVal) sealed()          {}

func (v bigMeasuredVal) Kind() Kind { return KindBigMeasured }
func (v bigMeasuredVal) Float64() float64 {
	f, _ := v.val.Float64()
	return f
}
func (v bigMeasuredVal) Prec() uint { return v.val.Prec() }
func (v bigMeasuredVal) sealed()    {}

// ToBig renders the central value at the requested precision.
// Fixed-precision values convert exactly; arbitrary-precision values
// are rounded (or padded) to bits.
func ToBig(v Value, bits uint) *big.Float {
	switch t := v.(type) {
	case fixedVal:
		return new(big.Float).SetPrec(bits).SetFloat64(float64(t))
	case measuredVal:
		return new(big.Float).SetPrec(bits).SetFloat64(t.val)
	case bigVal:
		return new(big.Float).SetPrec(bits).Set(t.f)
	case bigMeasuredVal:
		return new(big.Float).SetPrec(bits).Set(t.val)
	}
	panic(fmt.Sprintf("scalar: unknown value type %T", v))
}

// Uncertainty returns the standard uncertainty of v: the Euclidean
// norm of its gradient. Non-measured values have uncertainty exactly
// zero. The result is a plain (non-measured) value of the matching
// precision family.
func Uncertainty(v Value) Value {
	switch t := v.(type) {
	case fixedVal:
		return Float(0)
	case bigVal:
		return bigVal{f: new(big.Float).SetPrec(t.f.Prec())}
	case measuredVal:
		if len(t.grad) == 0 {
			return Float(0)
		}
		var sum float64
		for _, g := range t.grad {
			sum += g * g
		}
		return Float(math.Sqrt(sum))
	case bigMeasuredVal:
		prec := t.val.Prec()
		sum := new(big.Float).SetPrec(prec)
		sq := new(big.Float).SetPrec(prec)
		for _, g := range t.grad {
			sq.Mul(g, g)
			sum.Add(sum, sq)
		}
		if sum.Sign() == 0 {
			return bigVal{f: sum}
		}
		return bigVal{f: sum.Sqrt(sum)}
	}
	panic(fmt.Sprintf("scalar: unknown value type %T", v))
}

// Sources lists the uncertainty sources v depends on, ascending.
// Plain values and exact measurements have none.
func Sources(v Value) []uncert.Source {
	var out []uncert.Source
	switch t := v.(type) {
	case measuredVal:
		for s := range t.grad {
			out = append(out, s)
		}
	case bigMeasuredVal:
		for s := range t.grad {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
