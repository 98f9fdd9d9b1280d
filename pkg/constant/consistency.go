package constant

import (
	"fmt"
	"math"

	"github.com/leapstack-labs/codata/pkg/prec"
	"github.com/leapstack-labs/codata/pkg/scalar"
)

// verify runs the definition-time self checks: the fixed-precision and
// arbitrary-precision renderings of the value, the uncertainty, and
// the measurement terms must agree after rounding, and the magnitudes
// must be finite with a non-negative uncertainty. A failure aborts
// registration; it means the constant table itself is wrong.
func verify(d *def) error {
	fail := func(check, format string, args ...any) error {
		return &ConsistencyError{Name: d.name, Check: check, Detail: fmt.Sprintf(format, args...)}
	}

	if d.name == "" {
		return fail("name", "empty name")
	}
	if d.symbol == "" {
		return fail("symbol", "empty symbol")
	}

	val, unc := d.fixed()
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fail("value", "non-finite value %v", val)
	}
	if math.IsNaN(unc) || math.IsInf(unc, 0) || unc < 0 {
		return fail("uncertainty", "invalid standard uncertainty %v", unc)
	}

	// The exact generators rounded to the float64 width must reproduce
	// the fixed fields bit for bit.
	if got, _ := d.bigValue(scalar.FixedPrec).Float64(); got != val {
		return fail("value@53", "exact value rounds to %v, fixed value is %v", got, val)
	}
	if got, _ := d.bigUncertainty(scalar.FixedPrec).Float64(); got != unc {
		return fail("uncertainty@53", "exact uncertainty rounds to %v, fixed uncertainty is %v", got, unc)
	}

	// Cross-precision: the wide rendering must round back unchanged.
	wide := d.bigValue(prec.DefaultBits)
	if got, _ := wide.Float64(); got != val {
		return fail("value@default", "value at %d bits rounds to %v, fixed value is %v", prec.DefaultBits, got, val)
	}
	if d.bigUncertainty(prec.DefaultBits).Sign() < 0 {
		return fail("uncertainty@default", "negative exact uncertainty")
	}

	// Measurement terms must agree with the value/uncertainty pair at
	// both kinds.
	m := d.resolve(scalar.KindMeasured, scalar.FixedPrec)
	if m.Float64() != val {
		return fail("measurement", "measured value %v, fixed value %v", m.Float64(), val)
	}
	if got := scalar.Uncertainty(m).Float64(); got != unc {
		return fail("measurement", "measured uncertainty %v, fixed uncertainty %v", got, unc)
	}
	if unc == 0 && len(scalar.Sources(m)) != 0 {
		return fail("measurement", "exact constant allocated an uncertainty source")
	}

	bm := d.resolve(scalar.KindBigMeasured, prec.DefaultBits)
	if scalar.ToBig(bm, prec.DefaultBits).Cmp(wide) != 0 {
		return fail("measurement@default", "big measurement value disagrees with exact value")
	}
	if scalar.ToBig(scalar.Uncertainty(bm), prec.DefaultBits).Cmp(d.bigUncertainty(prec.DefaultBits)) != 0 {
		return fail("measurement@default", "big measurement uncertainty disagrees with exact uncertainty")
	}

	return nil
}
