// Package unit provides dimensioned quantities: scalar magnitudes
// tagged with an SI dimension vector and a concrete unit.
// Multiplication and division are always legal and compose dimensions;
// addition, subtraction, and conversion are checked against the
// dimension vector and fail with *DimensionMismatchError.
package unit

import (
	"fmt"
	"strings"
)

// Dimension is a vector of SI base-quantity exponents. The zero value
// is dimensionless. Dimensions are comparable with ==.
type Dimension struct {
	Length      int8 // L (meter)
	Mass        int8 // M (kilogram)
	Time        int8 // T (second)
	Current     int8 // I (ampere)
	Temperature int8 // Th (kelvin)
	Amount      int8 // N (mole)
	Luminosity  int8 // J (candela)
}

// Mul adds the exponent vectors, the dimension of a product.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length + o.Length,
		Mass:        d.Mass + o.Mass,
		Time:        d.Time + o.Time,
		Current:     d.Current + o.Current,
		Temperature: d.Temperature + o.Temperature,
		Amount:      d.Amount + o.Amount,
		Luminosity:  d.Luminosity + o.Luminosity,
	}
}

// Div subtracts the exponent vectors, the dimension of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length - o.Length,
		Mass:        d.Mass - o.Mass,
		Time:        d.Time - o.Time,
		Current:     d.Current - o.Current,
		Temperature: d.Temperature - o.Temperature,
		Amount:      d.Amount - o.Amount,
		Luminosity:  d.Luminosity - o.Luminosity,
	}
}

// Pow scales every exponent by n.
func (d Dimension) Pow(n int8) Dimension {
	return Dimension{
		Length:      d.Length * n,
		Mass:        d.Mass * n,
		Time:        d.Time * n,
		Current:     d.Current * n,
		Temperature: d.Temperature * n,
		Amount:      d.Amount * n,
		Luminosity:  d.Luminosity * n,
	}
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// String renders the dimension in L M T I Th N J order, e.g. "L T^-1".
// The dimensionless vector renders as "1".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}
	var parts []string
	for _, c := range []struct {
		sym string
		exp int8
	}{
		{"L", d.Length},
		{"M", d.Mass},
		{"T", d.Time},
		{"I", d.Current},
		{"Th", d.Temperature},
		{"N", d.Amount},
		{"J", d.Luminosity},
	} {
		switch {
		case c.exp == 0:
		case c.exp == 1:
			parts = append(parts, c.sym)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", c.sym, c.exp))
		}
	}
	return strings.Join(parts, " ")
}

// DimensionMismatchError reports an operation over incompatible
// dimensions: adding quantities of different dimension, or converting
// between units that do not measure the same quantity.
type DimensionMismatchError struct {
	Op    string
	Left  Dimension
	Right Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch in %s: %s vs %s", e.Op, e.Left, e.Right)
}
