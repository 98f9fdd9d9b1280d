package constant

import (
	"github.com/leapstack-labs/codata/pkg/prec"
	"github.com/leapstack-labs/codata/pkg/scalar"
	"github.com/leapstack-labs/codata/pkg/unit"
)

// Constant is a handle to one registered constant. Handles are
// comparable: two handles are equal exactly when they identify the
// same constant, regardless of numeric value. The zero Constant is
// invalid; handles come from Define, DefineDerived, or Lookup.
type Constant struct {
	d *def
}

// Valid reports whether the handle identifies a registered constant.
func (c Constant) Valid() bool { return c.d != nil }

// Name returns the unique registry name.
func (c Constant) Name() string { return c.d.name }

// Symbol returns the short display token, also registered as a lookup
// alias.
func (c Constant) Symbol() string { return c.d.symbol }

// Description returns the human-readable description.
func (c Constant) Description() string { return c.d.description }

// Reference returns the provenance of the value.
func (c Constant) Reference() string { return c.d.reference }

// Unit returns the unit the constant's magnitudes are expressed in.
func (c Constant) Unit() unit.Unit { return c.d.u }

// IsExact reports whether the standard uncertainty is zero.
func (c Constant) IsExact() bool {
	_, unc := c.d.fixed()
	return unc == 0
}

// IsDerived reports whether the constant is a closed form over other
// constants rather than a stored literal.
func (c Constant) IsDerived() bool { return c.d.formula != nil }

// Value returns the fixed-precision dimensioned value.
func (c Constant) Value() unit.Quantity {
	val, _ := c.d.fixed()
	return unit.NewQuantity(scalar.Float(val), c.d.u)
}

// BigValue returns the dimensioned value at the ambient working
// precision of env (nil env reads as prec.DefaultBits). The precision
// is read at call time; no result is cached across widths.
func (c Constant) BigValue(env *prec.Env) unit.Quantity {
	return unit.NewQuantity(scalar.FromBig(c.d.bigValue(env.Bits())), c.d.u)
}

// Measurement returns the fixed-precision measurement term: the value
// with its standard uncertainty bound to the constant's uncertainty
// source. Repeated calls share one source, so expressions built from
// them cancel correlated uncertainty exactly. Exact constants yield a
// term with no source at all.
func (c Constant) Measurement() unit.Quantity {
	return unit.NewQuantity(c.d.resolve(scalar.KindMeasured, scalar.FixedPrec), c.d.u)
}

// BigMeasurement is Measurement at the ambient working precision.
// The arbitrary-precision materialization has its own source,
// distinct from the fixed-precision one.
func (c Constant) BigMeasurement(env *prec.Env) unit.Quantity {
	return unit.NewQuantity(c.d.resolve(scalar.KindBigMeasured, env.Bits()), c.d.u)
}

// At returns the value at the requested kind: the uniform accessor
// behind Value, BigValue, Measurement, and BigMeasurement.
func (c Constant) At(kind scalar.Kind, env *prec.Env) unit.Quantity {
	return unit.NewQuantity(c.d.resolve(kind, env.Bits()), c.d.u)
}

// Uncertainty returns the fixed-precision standard uncertainty as a
// quantity in the constant's unit.
func (c Constant) Uncertainty() unit.Quantity {
	_, unc := c.d.fixed()
	return unit.NewQuantity(scalar.Float(unc), c.d.u)
}

// BigUncertainty returns the standard uncertainty at the ambient
// working precision.
func (c Constant) BigUncertainty(env *prec.Env) unit.Quantity {
	return unit.NewQuantity(scalar.FromBig(c.d.bigUncertainty(env.Bits())), c.d.u)
}

// constantFields is the fixed attribute set served by Field.
var constantFields = []string{"description", "name", "reference", "symbol", "unit"}

// Field returns a metadata attribute by name. Unknown attributes fail
// with *UnknownFieldError; there is no dynamic fallback.
func (c Constant) Field(name string) (string, error) {
	switch name {
	case "name":
		return c.d.name, nil
	case "symbol":
		return c.d.symbol, nil
	case "description":
		return c.d.description, nil
	case "reference":
		return c.d.reference, nil
	case "unit":
		return c.d.u.Symbol(), nil
	}
	return "", &UnknownFieldError{Constant: c.d.name, Field: name, Available: constantFields}
}
