package unit

// Unit is a named measure of one dimension. Factor is the multiple of
// the coherent SI unit of the same dimension (1 for all coherent
// units, 1000 for a kilometer). Units are comparable with ==.
type Unit struct {
	symbol string
	dim    Dimension
	factor float64
}

// NewUnit constructs a unit from a display symbol, a dimension, and a
// coherent-SI factor.
func NewUnit(symbol string, dim Dimension, factor float64) Unit {
	return Unit{symbol: symbol, dim: dim, factor: factor}
}

// Symbol returns the display symbol ("m s^-1"). The dimensionless unit
// has an empty symbol.
func (u Unit) Symbol() string { return u.symbol }

// Dimension returns the unit's dimension vector.
func (u Unit) Dimension() Dimension { return u.dim }

// Factor returns the multiple of the coherent SI unit.
func (u Unit) Factor() float64 { return u.factor }

// Mul composes the unit of a product. The symbol is joined textually;
// use Named to give the result a conventional symbol.
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		symbol: joinSymbols(u.symbol, v.symbol),
		dim:    u.dim.Mul(v.dim),
		factor: u.factor * v.factor,
	}
}

// Div composes the unit of a quotient.
func (u Unit) Div(v Unit) Unit {
	return Unit{
		symbol: joinSymbols(u.symbol, invertSymbol(v.symbol)),
		dim:    u.dim.Div(v.dim),
		factor: u.factor / v.factor,
	}
}

// Named returns a copy of u under a conventional symbol.
func (u Unit) Named(symbol string) Unit {
	u.symbol = symbol
	return u
}

// Scaled returns a non-coherent multiple of u, e.g.
// Meter.Scaled("km", 1000).
func (u Unit) Scaled(symbol string, factor float64) Unit {
	return Unit{symbol: symbol, dim: u.dim, factor: u.factor * factor}
}

func joinSymbols(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

func invertSymbol(s string) string {
	if s == "" {
		return ""
	}
	return s + "^-1"
}

// The SI base units and the named derived units the constant table
// uses. All are coherent (factor 1) except the explicitly scaled ones.
var (
	One      = Unit{factor: 1}
	Meter    = NewUnit("m", Dimension{Length: 1}, 1)
	Kilogram = NewUnit("kg", Dimension{Mass: 1}, 1)
	Second   = NewUnit("s", Dimension{Time: 1}, 1)
	Ampere   = NewUnit("A", Dimension{Current: 1}, 1)
	Kelvin   = NewUnit("K", Dimension{Temperature: 1}, 1)
	Mole     = NewUnit("mol", Dimension{Amount: 1}, 1)
	Candela  = NewUnit("cd", Dimension{Luminosity: 1}, 1)

	MeterPerSecond        = NewUnit("m s^-1", Dimension{Length: 1, Time: -1}, 1)
	MeterPerSecondSquared = NewUnit("m s^-2", Dimension{Length: 1, Time: -2}, 1)
	SquareMeter           = NewUnit("m^2", Dimension{Length: 2}, 1)
	PerMeter              = NewUnit("m^-1", Dimension{Length: -1}, 1)
	PerMole               = NewUnit("mol^-1", Dimension{Amount: -1}, 1)
	MeterKelvin           = NewUnit("m K", Dimension{Length: 1, Temperature: 1}, 1)

	Newton = NewUnit("N", Dimension{Mass: 1, Length: 1, Time: -2}, 1)
	Pascal = NewUnit("Pa", Dimension{Mass: 1, Length: -1, Time: -2}, 1)
	Joule  = NewUnit("J", Dimension{Mass: 1, Length: 2, Time: -2}, 1)
	Watt   = NewUnit("W", Dimension{Mass: 1, Length: 2, Time: -3}, 1)

	JouleSecond        = NewUnit("J s", Dimension{Mass: 1, Length: 2, Time: -1}, 1)
	JoulePerKelvin     = NewUnit("J K^-1", Dimension{Mass: 1, Length: 2, Time: -2, Temperature: -1}, 1)
	JoulePerMoleKelvin = NewUnit("J mol^-1 K^-1", Dimension{Mass: 1, Length: 2, Time: -2, Amount: -1, Temperature: -1}, 1)
	JoulePerTesla      = NewUnit("J T^-1", Dimension{Length: 2, Current: 1}, 1)

	Coulomb               = NewUnit("C", Dimension{Current: 1, Time: 1}, 1)
	FaradPerMeter         = NewUnit("F m^-1", Dimension{Mass: -1, Length: -3, Time: 4, Current: 2}, 1)
	NewtonPerAmpereSquared = NewUnit("N A^-2", Dimension{Mass: 1, Length: 1, Time: -2, Current: -2}, 1)
	Ohm                   = NewUnit("Ohm", Dimension{Mass: 1, Length: 2, Time: -3, Current: -2}, 1)
	Siemens               = NewUnit("S", Dimension{Mass: -1, Length: -2, Time: 3, Current: 2}, 1)
	Tesla                 = NewUnit("T", Dimension{Mass: 1, Time: -2, Current: -1}, 1)
	Weber                 = NewUnit("Wb", Dimension{Mass: 1, Length: 2, Time: -2, Current: -1}, 1)
	HertzPerVolt          = NewUnit("Hz V^-1", Dimension{Mass: -1, Length: -2, Time: 2, Current: 1}, 1)

	WattPerSquareMeterKelvin4         = NewUnit("W m^-2 K^-4", Dimension{Mass: 1, Time: -3, Temperature: -4}, 1)
	CubicMeterPerKilogramSecondSquared = NewUnit("m^3 kg^-1 s^-2", Dimension{Length: 3, Mass: -1, Time: -2}, 1)

	Kilometer          = Meter.Scaled("km", 1000)
	KilometerPerSecond = MeterPerSecond.Scaled("km s^-1", 1000)
)
