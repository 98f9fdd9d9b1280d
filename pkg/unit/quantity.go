package unit

import (
	"math/big"
	"strconv"

	"github.com/leapstack-labs/codata/pkg/scalar"
)

// Quantity is a scalar magnitude tagged with a unit. The magnitude may
// be any scalar kind; arithmetic on quantities promotes magnitudes per
// the scalar promotion rules while dimensions compose per the unit
// rules.
type Quantity struct {
	mag scalar.Value
	u   Unit
}

// NewQuantity tags a magnitude with a unit.
func NewQuantity(mag scalar.Value, u Unit) Quantity {
	return Quantity{mag: mag, u: u}
}

// Scalar wraps a plain dimensionless number.
func Scalar(x float64) Quantity {
	return Quantity{mag: scalar.Float(x), u: One}
}

// FromFloat tags a float64 magnitude with a unit.
func FromFloat(x float64, u Unit) Quantity {
	return Quantity{mag: scalar.Float(x), u: u}
}

// Mag returns the magnitude.
func (q Quantity) Mag() scalar.Value { return q.mag }

// Unit returns the unit.
func (q Quantity) Unit() Unit { return q.u }

// Dimension returns the unit's dimension.
func (q Quantity) Dimension() Dimension { return q.u.dim }

// Kind returns the magnitude's scalar kind.
func (q Quantity) Kind() scalar.Kind { return q.mag.Kind() }

// Float64 renders the magnitude at fixed precision, in q's unit.
func (q Quantity) Float64() float64 { return q.mag.Float64() }

// Big renders the magnitude at the requested precision, in q's unit.
func (q Quantity) Big(bits uint) *big.Float { return scalar.ToBig(q.mag, bits) }

// Uncertainty returns the standard uncertainty of the magnitude as a
// quantity in the same unit.
func (q Quantity) Uncertainty() Quantity {
	return Quantity{mag: scalar.Uncertainty(q.mag), u: q.u}
}

// alignTo rescales r's magnitude into q's unit. Both must share a
// dimension; the caller has checked that.
func (q Quantity) alignTo(r Quantity) scalar.Value {
	if q.u.factor == r.u.factor {
		return r.mag
	}
	return scalar.Mul(r.mag, scalar.Float(r.u.factor/q.u.factor))
}

// Add returns q+r in q's unit. Fails with *DimensionMismatchError when
// the dimensions differ; units of equal dimension are aligned first.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if q.u.dim != r.u.dim {
		return Quantity{}, &DimensionMismatchError{Op: "add", Left: q.u.dim, Right: r.u.dim}
	}
	return Quantity{mag: scalar.Add(q.mag, q.alignTo(r)), u: q.u}, nil
}

// Sub returns q-r in q's unit, with the same dimension rules as Add.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if q.u.dim != r.u.dim {
		return Quantity{}, &DimensionMismatchError{Op: "sub", Left: q.u.dim, Right: r.u.dim}
	}
	return Quantity{mag: scalar.Sub(q.mag, q.alignTo(r)), u: q.u}, nil
}

// Mul returns q*r; dimensions always compose.
func (q Quantity) Mul(r Quantity) Quantity {
	return Quantity{mag: scalar.Mul(q.mag, r.mag), u: q.u.Mul(r.u)}
}

// Div returns q/r; dimensions always compose.
func (q Quantity) Div(r Quantity) Quantity {
	return Quantity{mag: scalar.Div(q.mag, r.mag), u: q.u.Div(r.u)}
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{mag: scalar.Neg(q.mag), u: q.u}
}

// Convert re-expresses q in the unit to. Fails with
// *DimensionMismatchError when to measures a different quantity.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if q.u.dim != to.dim {
		return Quantity{}, &DimensionMismatchError{Op: "convert", Left: q.u.dim, Right: to.dim}
	}
	if q.u.factor == to.factor {
		return Quantity{mag: q.mag, u: to}, nil
	}
	return Quantity{mag: scalar.Mul(q.mag, scalar.Float(q.u.factor/to.factor)), u: to}, nil
}

// String renders "magnitude symbol" for diagnostics. Arbitrary
// precision magnitudes print with the decimal digits their width
// supports.
func (q Quantity) String() string {
	var s string
	if q.mag.Kind().Arbitrary() {
		digits := int(float64(q.mag.Prec()) * 0.30103)
		s = scalar.ToBig(q.mag, q.mag.Prec()).Text('g', digits)
	} else {
		s = strconv.FormatFloat(q.mag.Float64(), 'g', -1, 64)
	}
	if q.u.symbol == "" {
		return s
	}
	return s + " " + q.u.symbol
}
