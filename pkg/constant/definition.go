// Package constant is a registry of immutable physical constants.
// Each constant is a distinctly-identified, dimensioned value
// consumable at fixed (float64) or arbitrary (big.Float) precision,
// carrying a standard uncertainty that participates in correlated
// linear error propagation.
//
// Identity is nominal, not numeric: a Constant handle points at the
// interned definition minted by Define or DefineDerived, so two
// constants that happen to share a value remain distinct and
// materializations of the same constant share one uncertainty source.
package constant

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"sync"

	"github.com/leapstack-labs/codata/pkg/scalar"
	"github.com/leapstack-labs/codata/pkg/uncert"
	"github.com/leapstack-labs/codata/pkg/unit"
)

// Definition is the input record for a literal constant. Value and
// Uncertainty are the fixed-precision magnitudes in Unit; the exact
// generators produce the same mathematical value at any working
// precision. Precedence per generator: func, then decimal literal,
// then the exact binary value of the fixed field.
type Definition struct {
	Name        string
	Symbol      string
	Description string
	Reference   string
	Unit        unit.Unit

	Value     float64
	Exact     string                     // decimal literal, re-parsed per precision
	ExactFunc func(bits uint) *big.Float // overrides Exact

	Uncertainty          float64 // standard uncertainty, >= 0; 0 means exact
	ExactUncertainty     string
	ExactUncertaintyFunc func(bits uint) *big.Float
}

// DerivedDefinition is the input record for a constant defined as a
// closed form over other constants. The single Formula produces the
// value, the uncertainty, and the measurement term at every precision
// kind; nothing is stored that could drift from it.
type DerivedDefinition struct {
	Name        string
	Symbol      string
	Description string
	Reference   string
	Unit        unit.Unit
	Formula     Formula
}

// def is the interned, immutable definition. Constant handles carry a
// pointer to it; pointer identity is constant identity.
type def struct {
	name        string
	symbol      string
	description string
	reference   string
	u           unit.Unit

	// Literal constants.
	fixedVal float64
	fixedUnc float64
	exact    func(bits uint) *big.Float
	exactUnc func(bits uint) *big.Float

	// Derived constants evaluate this instead of the fields above.
	formula Formula

	// Fixed-precision results are referentially stable, so derived
	// constants may cache them.
	fixedOnce sync.Once
	cachedVal float64
	cachedUnc float64

	// One uncertainty source per numeric kind, minted on first
	// materialization. Index 0 is fixed, 1 is arbitrary.
	srcOnce [2]sync.Once
	srcID   [2]uncert.Source
}

func newLiteralDef(in Definition) (*def, error) {
	d := &def{
		name:        in.Name,
		symbol:      in.Symbol,
		description: in.Description,
		reference:   in.Reference,
		u:           in.Unit,
		fixedVal:    in.Value,
		fixedUnc:    in.Uncertainty,
	}
	var err error
	if d.exact, err = exactGenerator(in.Name, "value", in.ExactFunc, in.Exact, in.Value); err != nil {
		return nil, err
	}
	if d.exactUnc, err = exactGenerator(in.Name, "uncertainty", in.ExactUncertaintyFunc, in.ExactUncertainty, in.Uncertainty); err != nil {
		return nil, err
	}
	return d, nil
}

func newDerivedDef(in DerivedDefinition) (*def, error) {
	if in.Formula == nil {
		return nil, &ConsistencyError{Name: in.Name, Check: "formula", Detail: "derived constant has no formula"}
	}
	return &def{
		name:        in.Name,
		symbol:      in.Symbol,
		description: in.Description,
		reference:   in.Reference,
		u:           in.Unit,
		formula:     in.Formula,
	}, nil
}

func exactGenerator(name, field string, fn func(uint) *big.Float, literal string, fixed float64) (func(uint) *big.Float, error) {
	switch {
	case fn != nil:
		return fn, nil
	case literal != "":
		if _, _, err := big.ParseFloat(literal, 10, scalar.FixedPrec, big.ToNearestEven); err != nil {
			return nil, &ConsistencyError{
				Name:   name,
				Check:  "exact-" + field,
				Detail: fmt.Sprintf("bad decimal literal %q: %v", literal, err),
			}
		}
		return func(bits uint) *big.Float {
			f, _, _ := big.ParseFloat(literal, 10, bits, big.ToNearestEven)
			return f
		}, nil
	default:
		return func(bits uint) *big.Float {
			return new(big.Float).SetPrec(bits).SetFloat64(fixed)
		}, nil
	}
}

// fixed returns the fixed-precision value and uncertainty, evaluating
// and caching a derived constant's formula on first use.
func (d *def) fixed() (val, unc float64) {
	if d.formula == nil {
		return d.fixedVal, d.fixedUnc
	}
	d.fixedOnce.Do(func() {
		v := d.formula(&Eval{kind: scalar.KindMeasured, bits: scalar.FixedPrec})
		d.cachedVal = v.Float64()
		d.cachedUnc = scalar.Uncertainty(v).Float64()
	})
	return d.cachedVal, d.cachedUnc
}

// bigValue evaluates the exact value at the requested precision.
// Results are never cached across precisions.
func (d *def) bigValue(bits uint) *big.Float {
	if d.formula == nil {
		return d.exact(bits)
	}
	return scalar.ToBig(d.formula(&Eval{kind: scalar.KindBig, bits: bits}), bits)
}

// bigUncertainty evaluates the exact standard uncertainty at the
// requested precision.
func (d *def) bigUncertainty(bits uint) *big.Float {
	if d.formula == nil {
		return d.exactUnc(bits)
	}
	v := d.formula(&Eval{kind: scalar.KindBigMeasured, bits: bits})
	return scalar.ToBig(scalar.Uncertainty(v), bits)
}

// source returns the uncertainty source for the given kind index,
// minting it on first use. Concurrent first materializations observe
// one id.
func (d *def) source(idx int) uncert.Source {
	d.srcOnce[idx].Do(func() {
		d.srcID[idx] = uncert.Next()
	})
	return d.srcID[idx]
}

// resolve produces the magnitude at the requested kind and precision.
func (d *def) resolve(kind scalar.Kind, bits uint) scalar.Value {
	switch kind {
	case scalar.KindFixed:
		val, _ := d.fixed()
		return scalar.Float(val)
	case scalar.KindBig:
		return scalar.FromBig(d.bigValue(bits))
	case scalar.KindMeasured:
		if d.formula != nil {
			return d.formula(&Eval{kind: scalar.KindMeasured, bits: scalar.FixedPrec})
		}
		if d.fixedUnc == 0 {
			return scalar.Measure(d.fixedVal, 0, uncert.None)
		}
		return scalar.Measure(d.fixedVal, d.fixedUnc, d.source(0))
	case scalar.KindBigMeasured:
		if d.formula != nil {
			return d.formula(&Eval{kind: scalar.KindBigMeasured, bits: bits})
		}
		if d.fixedUnc == 0 {
			return scalar.MeasureBig(d.exact(bits), nil, uncert.None)
		}
		return scalar.MeasureBig(d.exact(bits), d.exactUnc(bits), d.source(1))
	}
	panic(fmt.Sprintf("constant: unknown kind %d", kind))
}

// Eval is the evaluation context handed to a derived constant's
// formula: it resolves dependency constants, literals, and pi at the
// kind and working precision of the enclosing access, so one closed
// form serves every representation.
type Eval struct {
	kind scalar.Kind
	bits uint
}

// Formula is the closed form of a derived constant, written over the
// Eval context with the scalar package's arithmetic.
type Formula func(e *Eval) scalar.Value

// Const resolves a dependency constant at the evaluation's kind and
// precision. At the measured kinds it yields the dependency's
// measurement term, so gradients flow through the formula.
func (e *Eval) Const(c Constant) scalar.Value {
	return c.d.resolve(e.kind, e.bits)
}

// Lit is an exact binary literal (an integer or a power of two, e.g.
// 2 or 0.5). For decimal literals use Dec.
func (e *Eval) Lit(x float64) scalar.Value {
	if e.kind.Arbitrary() {
		return scalar.FromBig(new(big.Float).SetPrec(e.bits).SetFloat64(x))
	}
	return scalar.Float(x)
}

// Dec is a decimal literal evaluated at the working precision, e.g.
// "1e-7" in the definition of the magnetic constant.
func (e *Eval) Dec(s string) scalar.Value {
	if e.kind.Arbitrary() {
		return scalar.MustParseBig(s, e.bits)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("constant: bad decimal literal %q: %v", s, err))
	}
	return scalar.Float(f)
}

// Pi is the circle constant at the working precision.
func (e *Eval) Pi() scalar.Value {
	if e.kind.Arbitrary() {
		return scalar.FromBig(scalar.Pi(e.bits))
	}
	return scalar.Float(math.Pi)
}
