package constant

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/codata/pkg/prec"
	"github.com/leapstack-labs/codata/pkg/scalar"
	"github.com/leapstack-labs/codata/pkg/unit"
)

func defineSpeedOfLight(t *testing.T, r *Registry) Constant {
	t.Helper()
	c, err := r.Define(Definition{
		Name:        "SpeedOfLightInVacuum",
		Symbol:      "c_0",
		Description: "Speed of light in vacuum",
		Reference:   "CODATA 2014",
		Unit:        unit.MeterPerSecond,
		Value:       299792458,
		Exact:       "299792458",
	})
	require.NoError(t, err)
	return c
}

func definePlanck(t *testing.T, r *Registry) Constant {
	t.Helper()
	h, err := r.Define(Definition{
		Name:             "PlanckConstant",
		Symbol:           "h",
		Description:      "Planck constant",
		Reference:        "CODATA 2014",
		Unit:             unit.JouleSecond,
		Value:            6.626070040e-34,
		Exact:            "6.626070040e-34",
		Uncertainty:      8.1e-42,
		ExactUncertainty: "8.1e-42",
	})
	require.NoError(t, err)
	return h
}

func deriveHBar(t *testing.T, r *Registry, h Constant) Constant {
	t.Helper()
	hbar, err := r.DefineDerived(DerivedDefinition{
		Name:        "ReducedPlanckConstant",
		Symbol:      "hbar",
		Description: "Reduced Planck constant",
		Reference:   "CODATA 2014",
		Unit:        unit.JouleSecond,
		Formula: func(e *Eval) scalar.Value {
			return scalar.Div(e.Const(h), scalar.Mul(e.Lit(2), e.Pi()))
		},
	})
	require.NoError(t, err)
	return hbar
}

func TestDefine_Accessors(t *testing.T) {
	r := NewRegistry()
	c := defineSpeedOfLight(t, r)

	assert.True(t, c.Valid())
	assert.Equal(t, "SpeedOfLightInVacuum", c.Name())
	assert.Equal(t, "c_0", c.Symbol())
	assert.True(t, c.IsExact())
	assert.False(t, c.IsDerived())
	assert.Equal(t, 299792458.0, c.Value().Float64())
	assert.Equal(t, unit.MeterPerSecond, c.Value().Unit())
	assert.Equal(t, 0.0, c.Uncertainty().Float64())
}

func TestDefine_ExactRoundTripAt768Bits(t *testing.T) {
	r := NewRegistry()
	c := defineSpeedOfLight(t, r)

	env := prec.NewEnv(768)
	wide := c.BigValue(env)
	assert.Equal(t, uint(768), wide.Mag().Prec())

	back, acc := wide.Big(768).Float64()
	assert.Equal(t, 299792458.0, back)
	assert.Equal(t, 0, int(acc))
}

func TestDefine_FixedBigAgreementAcrossWidths(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)

	for _, bits := range []uint{53, 128, 256, 768} {
		got, _ := h.BigValue(prec.NewEnv(bits)).Big(bits).Float64()
		assert.Equal(t, h.Value().Float64(), got, "width %d", bits)
	}
}

func TestDefine_DuplicateNameLeavesRegistryUnchanged(t *testing.T) {
	r := NewRegistry()
	defineSpeedOfLight(t, r)
	require.Equal(t, 1, r.Len())

	_, err := r.Define(Definition{
		Name:   "SpeedOfLightInVacuum",
		Symbol: "c2",
		Unit:   unit.MeterPerSecond,
		Value:  123,
	})
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "SpeedOfLightInVacuum", dup.Key)

	assert.Equal(t, 1, r.Len())
	got, ok := r.Lookup("SpeedOfLightInVacuum")
	require.True(t, ok)
	assert.Equal(t, 299792458.0, got.Value().Float64(), "original definition must survive")
}

func TestDefine_RedefinitionUnderOtherDimension(t *testing.T) {
	r := NewRegistry()
	defineSpeedOfLight(t, r)

	_, err := r.Define(Definition{
		Name:   "SpeedOfLightInVacuum",
		Symbol: "x",
		Unit:   unit.Joule,
		Value:  1,
	})
	var mismatch *unit.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestDefine_SymbolCollision(t *testing.T) {
	r := NewRegistry()
	defineSpeedOfLight(t, r)

	_, err := r.Define(Definition{
		Name:   "SomethingElse",
		Symbol: "c_0",
		Unit:   unit.One,
		Value:  1,
	})
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "symbol", dup.Kind)
}

func TestDefine_ConsistencyFailures(t *testing.T) {
	r := NewRegistry()

	_, err := r.Define(Definition{
		Name:   "Broken",
		Symbol: "b1",
		Unit:   unit.One,
		Value:  1.0,
		Exact:  "2.0", // disagrees with the fixed value
	})
	var cons *ConsistencyError
	require.ErrorAs(t, err, &cons)
	assert.Equal(t, "value@53", cons.Check)

	_, err = r.Define(Definition{
		Name:        "NegativeUncertainty",
		Symbol:      "b2",
		Unit:        unit.One,
		Value:       1.0,
		Uncertainty: -0.5,
	})
	require.ErrorAs(t, err, &cons)
	assert.Equal(t, "uncertainty", cons.Check)

	_, err = r.Define(Definition{
		Name:   "NotFinite",
		Symbol: "b3",
		Unit:   unit.One,
		Value:  math.Inf(1),
	})
	require.ErrorAs(t, err, &cons)

	assert.Equal(t, 0, r.Len(), "failed definitions must not register")
}

func TestMeasurement_ExactConstant(t *testing.T) {
	r := NewRegistry()
	c := defineSpeedOfLight(t, r)

	m := c.Measurement()
	assert.Empty(t, scalar.Sources(m.Mag()), "exact constant must not allocate a source")

	diff, err := m.Sub(c.Measurement())
	require.NoError(t, err)
	assert.Equal(t, 0.0, diff.Float64())
	assert.Equal(t, 0.0, diff.Uncertainty().Float64())

	ratio := m.Div(c.Measurement())
	assert.Equal(t, 1.0, ratio.Float64())
	assert.Equal(t, 0.0, ratio.Uncertainty().Float64())
}

func TestMeasurement_SourceIdempotence(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)

	first := scalar.Sources(h.Measurement().Mag())
	second := scalar.Sources(h.Measurement().Mag())
	require.Len(t, first, 1)
	assert.Equal(t, first, second, "same (constant, kind) must reuse one source")

	bigSrc := scalar.Sources(h.BigMeasurement(nil).Mag())
	require.Len(t, bigSrc, 1)
	assert.NotEqual(t, first[0], bigSrc[0], "fixed and arbitrary kinds have distinct sources")
}

func TestMeasurement_ConcurrentFirstUseSharesOneSource(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)

	const n = 32
	sources := make([]uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			s := scalar.Sources(h.Measurement().Mag())
			sources[i] = uint64(s[0])
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Equal(t, sources[0], sources[i])
	}
}

func TestMeasurement_CorrelatedCancellation(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)

	diff, err := h.Measurement().Sub(h.Measurement())
	require.NoError(t, err)
	assert.Equal(t, 0.0, diff.Float64())
	assert.Equal(t, 0.0, diff.Uncertainty().Float64(), "cancellation must be exact, not approximate")

	ratio := h.Measurement().Div(h.Measurement())
	assert.Equal(t, 1.0, ratio.Float64())
	assert.Equal(t, 0.0, ratio.Uncertainty().Float64())
}

func TestMeasurement_UnrelatedConstantsCombineInQuadrature(t *testing.T) {
	r := NewRegistry()
	a, err := r.Define(Definition{
		Name: "A", Symbol: "a", Unit: unit.One, Value: 10, Uncertainty: 3,
	})
	require.NoError(t, err)
	b, err := r.Define(Definition{
		Name: "B", Symbol: "b", Unit: unit.One, Value: 4, Uncertainty: 4,
	})
	require.NoError(t, err)

	diff, err := a.Measurement().Sub(b.Measurement())
	require.NoError(t, err)
	assert.Equal(t, 6.0, diff.Float64())
	assert.InDelta(t, 5.0, diff.Uncertainty().Float64(), 1e-15)
}

func TestDerived_ReducedPlanckConstant(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)
	hbar := deriveHBar(t, r, h)

	assert.True(t, hbar.IsDerived())
	assert.False(t, hbar.IsExact())

	// Value and uncertainty follow the closed form at fixed precision.
	twoPi := 2 * math.Pi
	assert.Equal(t, h.Value().Float64()/twoPi, hbar.Value().Float64())
	assert.InEpsilon(t, 8.1e-42/twoPi, hbar.Uncertainty().Float64(), 1e-15)
	assert.InEpsilon(t, 1.289155e-42, hbar.Uncertainty().Float64(), 1e-5)
}

func TestDerived_ReproducibleAtAnyPrecision(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)
	hbar := deriveHBar(t, r, h)

	for _, bits := range []uint{64, 256, 768} {
		env := prec.NewEnv(bits)
		want := scalar.Div(
			h.BigValue(env).Mag(),
			scalar.Mul(scalar.Float(2), scalar.FromBig(scalar.Pi(bits))),
		)
		got := hbar.BigValue(env).Mag()
		assert.Equal(t, 0, scalar.Cmp(got, want), "width %d", bits)
	}
}

func TestDerived_CancelsAgainstDefiningExpression(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)
	hbar := deriveHBar(t, r, h)

	rebuilt := h.Measurement().Div(unit.Scalar(2 * math.Pi))
	ratio := hbar.Measurement().Div(rebuilt)

	assert.Equal(t, 1.0, ratio.Float64())
	assert.Equal(t, 0.0, ratio.Uncertainty().Float64(), "shared source must cancel exactly")
	assert.True(t, ratio.Dimension().IsDimensionless())
}

func TestDerived_BigMeasurementGradient(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)
	hbar := deriveHBar(t, r, h)

	env := prec.NewEnv(256)
	m := hbar.BigMeasurement(env)
	require.Len(t, scalar.Sources(m.Mag()), 1)
	assert.Equal(t, scalar.Sources(h.BigMeasurement(env).Mag()), scalar.Sources(m.Mag()))

	diff, err := m.Sub(hbar.BigMeasurement(env))
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.Cmp(diff.Mag(), scalar.Float(0)))
	assert.Equal(t, 0, scalar.Cmp(diff.Uncertainty().Mag(), scalar.Float(0)))
}

func TestAt_UniformAccessor(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)

	assert.Equal(t, scalar.KindFixed, h.At(scalar.KindFixed, nil).Kind())
	assert.Equal(t, scalar.KindBig, h.At(scalar.KindBig, nil).Kind())
	assert.Equal(t, scalar.KindMeasured, h.At(scalar.KindMeasured, nil).Kind())
	assert.Equal(t, scalar.KindBigMeasured, h.At(scalar.KindBigMeasured, nil).Kind())
	assert.Equal(t, prec.DefaultBits, h.At(scalar.KindBig, nil).Mag().Prec())
}

func TestPromotion_ConstantWithNumbersAndQuantities(t *testing.T) {
	r := NewRegistry()
	alpha, err := r.Define(Definition{
		Name:        "FineStructureConstant",
		Symbol:      "alpha",
		Unit:        unit.One,
		Value:       7.2973525664e-3,
		Exact:       "7.2973525664e-3",
		Uncertainty: 1.7e-12,
	})
	require.NoError(t, err)
	c := defineSpeedOfLight(t, r)

	// Dimensionless constant + plain number.
	sum, err := alpha.Value().Add(unit.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, 1+7.2973525664e-3, sum.Float64())

	// Constant + quantity of matching dimension, both operand orders;
	// the measured operand sets the result kind.
	v := unit.FromFloat(42, unit.MeterPerSecond)
	left, err := c.Measurement().Add(v)
	require.NoError(t, err)
	right, err := v.Add(c.Measurement())
	require.NoError(t, err)
	assert.Equal(t, scalar.KindMeasured, left.Kind())
	assert.Equal(t, left.Kind(), right.Kind())
	assert.Equal(t, left.Float64(), right.Float64())

	// Mismatched dimension fails.
	_, err = c.Value().Add(unit.FromFloat(1, unit.Joule))
	var mismatch *unit.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestField(t *testing.T) {
	r := NewRegistry()
	c := defineSpeedOfLight(t, r)

	desc, err := c.Field("description")
	require.NoError(t, err)
	assert.Equal(t, "Speed of light in vacuum", desc)

	u, err := c.Field("unit")
	require.NoError(t, err)
	assert.Equal(t, "m s^-1", u)

	_, err = c.Field("val")
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "val", unknown.Field)
	assert.Contains(t, unknown.Available, "symbol")
}

func TestRegistry_LookupAndGet(t *testing.T) {
	r := NewRegistry()
	c := defineSpeedOfLight(t, r)

	byName, ok := r.Lookup("SpeedOfLightInVacuum")
	require.True(t, ok)
	bySymbol, ok := r.Lookup("c_0")
	require.True(t, ok)
	assert.Equal(t, byName, bySymbol, "name and symbol resolve to one identity")
	assert.Equal(t, c, byName)

	_, err := r.Get("PlanckConstant")
	var unknown *UnknownConstantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"SpeedOfLightInVacuum"}, unknown.Available)
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	definePlanck(t, r)
	defineSpeedOfLight(t, r)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "PlanckConstant", list[0].Name())
	assert.Equal(t, "SpeedOfLightInVacuum", list[1].Name())
}

func TestBigValue_AmbientPrecisionReadAtCallTime(t *testing.T) {
	r := NewRegistry()
	h := definePlanck(t, r)

	env := prec.NewEnv(128)
	var inner uint
	err := env.With(768, func() error {
		inner = h.BigValue(env).Mag().Prec()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(768), inner)
	assert.Equal(t, uint(128), h.BigValue(env).Mag().Prec())
}
