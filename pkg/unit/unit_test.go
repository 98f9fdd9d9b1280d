package unit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/codata/pkg/scalar"
	"github.com/leapstack-labs/codata/pkg/uncert"
)

func TestDimension_Compose(t *testing.T) {
	speed := Dimension{Length: 1, Time: -1}
	assert.Equal(t, Dimension{Length: 2, Time: -2}, speed.Mul(speed))
	assert.Equal(t, Dimension{}, speed.Div(speed))
	assert.Equal(t, Dimension{Length: -2, Time: 2}, speed.Pow(-2))
	assert.True(t, speed.Div(speed).IsDimensionless())
}

func TestDimension_String(t *testing.T) {
	assert.Equal(t, "1", Dimension{}.String())
	assert.Equal(t, "L T^-1", Dimension{Length: 1, Time: -1}.String())
	assert.Equal(t, "L^3 M^-1 T^-2", Dimension{Length: 3, Mass: -1, Time: -2}.String())
}

func TestUnit_Combinators(t *testing.T) {
	speed := Meter.Div(Second)
	assert.Equal(t, MeterPerSecond.Dimension(), speed.Dimension())
	assert.Equal(t, "m s^-1", speed.Symbol())

	energy := Newton.Mul(Meter).Named("J")
	assert.Equal(t, Joule, energy)
}

func TestQuantity_AddMatchingDimensions(t *testing.T) {
	a := FromFloat(2, Meter)
	b := FromFloat(3, Meter)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, sum.Float64())
	assert.Equal(t, Meter, sum.Unit())
}

func TestQuantity_AddAlignsUnits(t *testing.T) {
	a := FromFloat(500, Meter)
	b := FromFloat(1, Kilometer)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, sum.Float64())
	assert.Equal(t, Meter, sum.Unit())
}

func TestQuantity_AddDimensionMismatch(t *testing.T) {
	a := FromFloat(2, Meter)
	b := FromFloat(3, Second)
	_, err := a.Add(b)

	var mismatch *DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "add", mismatch.Op)
	assert.Equal(t, Dimension{Length: 1}, mismatch.Left)
	assert.Equal(t, Dimension{Time: 1}, mismatch.Right)
}

func TestQuantity_MulDivComposeDimensions(t *testing.T) {
	d := FromFloat(10, Meter)
	dt := FromFloat(2, Second)
	v := d.Div(dt)
	assert.Equal(t, 5.0, v.Float64())
	assert.Equal(t, Dimension{Length: 1, Time: -1}, v.Dimension())

	back := v.Mul(dt)
	assert.Equal(t, 10.0, back.Float64())
	assert.Equal(t, Dimension{Length: 1}, back.Dimension())
}

func TestQuantity_Convert(t *testing.T) {
	c := FromFloat(299792458, MeterPerSecond)
	kms, err := c.Convert(KilometerPerSecond)
	require.NoError(t, err)
	assert.Equal(t, 299792.458, kms.Float64())
	assert.Equal(t, KilometerPerSecond, kms.Unit())

	_, err = c.Convert(Joule)
	var mismatch *DimensionMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestQuantity_PromotionThroughArithmetic(t *testing.T) {
	c := NewQuantity(scalar.MustParseBig("299792458", 768), MeterPerSecond)
	half := c.Mul(Scalar(0.5))
	assert.Equal(t, scalar.KindBig, half.Kind())
	assert.Equal(t, uint(768), half.Mag().Prec())
	assert.Equal(t, 149896229.0, half.Float64())
}

func TestQuantity_UncertaintyCarriesUnit(t *testing.T) {
	src := uncert.Next()
	h := NewQuantity(scalar.Measure(6.626070040e-34, 8.1e-42, src), JouleSecond)
	u := h.Uncertainty()
	assert.Equal(t, 8.1e-42, u.Float64())
	assert.Equal(t, JouleSecond, u.Unit())
}

func TestQuantity_String(t *testing.T) {
	assert.Equal(t, "2.5 m", FromFloat(2.5, Meter).String())
	assert.Equal(t, "42", Scalar(42).String())
}
