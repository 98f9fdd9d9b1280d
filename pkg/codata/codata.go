// Package codata registers the CODATA 2014 recommended values of the
// fundamental physical constants into the default registry. Importing
// the package makes the constants available by name or symbol through
// constant.Lookup; the exported handles give direct typed access.
//
// Literal constants carry the recommended value, its decimal source
// text, and the standard uncertainty. Derived constants (the reduced
// Planck constant, the magnetic, electric, and characteristic vacuum
// constants) are closed forms over the literals and stay consistent
// with them at every precision by construction.
package codata

import (
	"github.com/leapstack-labs/codata/pkg/constant"
	"github.com/leapstack-labs/codata/pkg/scalar"
	"github.com/leapstack-labs/codata/pkg/unit"
)

const reference = "CODATA 2014"

var (
	// SpeedOfLightInVacuum is exact by the definition of the metre.
	SpeedOfLightInVacuum = constant.MustDefine(constant.Definition{
		Name:        "SpeedOfLightInVacuum",
		Symbol:      "c",
		Description: "Speed of light in vacuum",
		Reference:   reference,
		Unit:        unit.MeterPerSecond,
		Value:       299792458,
		Exact:       "299792458",
	})

	PlanckConstant = constant.MustDefine(constant.Definition{
		Name:             "PlanckConstant",
		Symbol:           "h",
		Description:      "Planck constant",
		Reference:        reference,
		Unit:             unit.JouleSecond,
		Value:            6.626070040e-34,
		Exact:            "6.626070040e-34",
		Uncertainty:      8.1e-42,
		ExactUncertainty: "8.1e-42",
	})

	// ReducedPlanckConstant is h/(2 pi); its uncertainty is fully
	// correlated with the Planck constant's.
	ReducedPlanckConstant = constant.MustDefineDerived(constant.DerivedDefinition{
		Name:        "ReducedPlanckConstant",
		Symbol:      "hbar",
		Description: "Reduced Planck constant",
		Reference:   reference,
		Unit:        unit.JouleSecond,
		Formula: func(e *constant.Eval) scalar.Value {
			return scalar.Div(e.Const(PlanckConstant), scalar.Mul(e.Lit(2), e.Pi()))
		},
	})

	NewtonianConstantOfGravitation = constant.MustDefine(constant.Definition{
		Name:             "NewtonianConstantOfGravitation",
		Symbol:           "G",
		Description:      "Newtonian constant of gravitation",
		Reference:        reference,
		Unit:             unit.CubicMeterPerKilogramSecondSquared,
		Value:            6.67408e-11,
		Exact:            "6.67408e-11",
		Uncertainty:      3.1e-15,
		ExactUncertainty: "3.1e-15",
	})

	ElementaryCharge = constant.MustDefine(constant.Definition{
		Name:             "ElementaryCharge",
		Symbol:           "e",
		Description:      "Elementary charge",
		Reference:        reference,
		Unit:             unit.Coulomb,
		Value:            1.6021766208e-19,
		Exact:            "1.6021766208e-19",
		Uncertainty:      9.8e-28,
		ExactUncertainty: "9.8e-28",
	})

	ElectronMass = constant.MustDefine(constant.Definition{
		Name:             "ElectronMass",
		Symbol:           "m_e",
		Description:      "Electron mass",
		Reference:        reference,
		Unit:             unit.Kilogram,
		Value:            9.10938356e-31,
		Exact:            "9.10938356e-31",
		Uncertainty:      1.1e-38,
		ExactUncertainty: "1.1e-38",
	})

	ProtonMass = constant.MustDefine(constant.Definition{
		Name:             "ProtonMass",
		Symbol:           "m_p",
		Description:      "Proton mass",
		Reference:        reference,
		Unit:             unit.Kilogram,
		Value:            1.672621898e-27,
		Exact:            "1.672621898e-27",
		Uncertainty:      2.1e-35,
		ExactUncertainty: "2.1e-35",
	})

	NeutronMass = constant.MustDefine(constant.Definition{
		Name:             "NeutronMass",
		Symbol:           "m_n",
		Description:      "Neutron mass",
		Reference:        reference,
		Unit:             unit.Kilogram,
		Value:            1.674927471e-27,
		Exact:            "1.674927471e-27",
		Uncertainty:      2.1e-35,
		ExactUncertainty: "2.1e-35",
	})

	AtomicMassConstant = constant.MustDefine(constant.Definition{
		Name:             "AtomicMassConstant",
		Symbol:           "m_u",
		Description:      "Atomic mass constant",
		Reference:        reference,
		Unit:             unit.Kilogram,
		Value:            1.660539040e-27,
		Exact:            "1.660539040e-27",
		Uncertainty:      2.0e-35,
		ExactUncertainty: "2.0e-35",
	})

	AvogadroConstant = constant.MustDefine(constant.Definition{
		Name:             "AvogadroConstant",
		Symbol:           "N_A",
		Description:      "Avogadro constant",
		Reference:        reference,
		Unit:             unit.PerMole,
		Value:            6.022140857e23,
		Exact:            "6.022140857e23",
		Uncertainty:      7.4e15,
		ExactUncertainty: "7.4e15",
	})

	BoltzmannConstant = constant.MustDefine(constant.Definition{
		Name:             "BoltzmannConstant",
		Symbol:           "k",
		Description:      "Boltzmann constant",
		Reference:        reference,
		Unit:             unit.JoulePerKelvin,
		Value:            1.38064852e-23,
		Exact:            "1.38064852e-23",
		Uncertainty:      7.9e-30,
		ExactUncertainty: "7.9e-30",
	})

	MolarGasConstant = constant.MustDefine(constant.Definition{
		Name:             "MolarGasConstant",
		Symbol:           "R",
		Description:      "Molar gas constant",
		Reference:        reference,
		Unit:             unit.JoulePerMoleKelvin,
		Value:            8.3144598,
		Exact:            "8.3144598",
		Uncertainty:      4.8e-6,
		ExactUncertainty: "4.8e-6",
	})

	StefanBoltzmannConstant = constant.MustDefine(constant.Definition{
		Name:             "StefanBoltzmannConstant",
		Symbol:           "sigma",
		Description:      "Stefan-Boltzmann constant",
		Reference:        reference,
		Unit:             unit.WattPerSquareMeterKelvin4,
		Value:            5.670367e-8,
		Exact:            "5.670367e-8",
		Uncertainty:      1.3e-13,
		ExactUncertainty: "1.3e-13",
	})

	FineStructureConstant = constant.MustDefine(constant.Definition{
		Name:             "FineStructureConstant",
		Symbol:           "alpha",
		Description:      "Fine-structure constant",
		Reference:        reference,
		Unit:             unit.One,
		Value:            7.2973525664e-3,
		Exact:            "7.2973525664e-3",
		Uncertainty:      1.7e-12,
		ExactUncertainty: "1.7e-12",
	})

	RydbergConstant = constant.MustDefine(constant.Definition{
		Name:             "RydbergConstant",
		Symbol:           "R_inf",
		Description:      "Rydberg constant",
		Reference:        reference,
		Unit:             unit.PerMeter,
		Value:            10973731.568508,
		Exact:            "10973731.568508",
		Uncertainty:      6.5e-5,
		ExactUncertainty: "6.5e-5",
	})

	BohrRadius = constant.MustDefine(constant.Definition{
		Name:             "BohrRadius",
		Symbol:           "a_0",
		Description:      "Bohr radius",
		Reference:        reference,
		Unit:             unit.Meter,
		Value:            0.52917721067e-10,
		Exact:            "0.52917721067e-10",
		Uncertainty:      1.2e-20,
		ExactUncertainty: "1.2e-20",
	})

	BohrMagneton = constant.MustDefine(constant.Definition{
		Name:             "BohrMagneton",
		Symbol:           "mu_B",
		Description:      "Bohr magneton",
		Reference:        reference,
		Unit:             unit.JoulePerTesla,
		Value:            927.4009994e-26,
		Exact:            "927.4009994e-26",
		Uncertainty:      5.7e-32,
		ExactUncertainty: "5.7e-32",
	})

	NuclearMagneton = constant.MustDefine(constant.Definition{
		Name:             "NuclearMagneton",
		Symbol:           "mu_N",
		Description:      "Nuclear magneton",
		Reference:        reference,
		Unit:             unit.JoulePerTesla,
		Value:            5.050783699e-27,
		Exact:            "5.050783699e-27",
		Uncertainty:      3.1e-35,
		ExactUncertainty: "3.1e-35",
	})

	// StandardAccelerationOfGravity is exact by convention.
	StandardAccelerationOfGravity = constant.MustDefine(constant.Definition{
		Name:        "StandardAccelerationOfGravity",
		Symbol:      "g_n",
		Description: "Standard acceleration of gravity",
		Reference:   reference,
		Unit:        unit.MeterPerSecondSquared,
		Value:       9.80665,
		Exact:       "9.80665",
	})

	// StandardAtmosphere is exact by convention.
	StandardAtmosphere = constant.MustDefine(constant.Definition{
		Name:        "StandardAtmosphere",
		Symbol:      "atm",
		Description: "Standard atmosphere",
		Reference:   reference,
		Unit:        unit.Pascal,
		Value:       101325,
		Exact:       "101325",
	})

	ThomsonCrossSection = constant.MustDefine(constant.Definition{
		Name:             "ThomsonCrossSection",
		Symbol:           "sigma_e",
		Description:      "Thomson cross section",
		Reference:        reference,
		Unit:             unit.SquareMeter,
		Value:            0.66524587158e-28,
		Exact:            "0.66524587158e-28",
		Uncertainty:      9.1e-38,
		ExactUncertainty: "9.1e-38",
	})

	WienWavelengthDisplacementLawConstant = constant.MustDefine(constant.Definition{
		Name:             "WienWavelengthDisplacementLawConstant",
		Symbol:           "b",
		Description:      "Wien wavelength displacement law constant",
		Reference:        reference,
		Unit:             unit.MeterKelvin,
		Value:            2.8977729e-3,
		Exact:            "2.8977729e-3",
		Uncertainty:      1.7e-9,
		ExactUncertainty: "1.7e-9",
	})

	JosephsonConstant = constant.MustDefine(constant.Definition{
		Name:             "JosephsonConstant",
		Symbol:           "K_J",
		Description:      "Josephson constant",
		Reference:        reference,
		Unit:             unit.HertzPerVolt,
		Value:            483597.8525e9,
		Exact:            "483597.8525e9",
		Uncertainty:      3.0e6,
		ExactUncertainty: "3.0e6",
	})

	VonKlitzingConstant = constant.MustDefine(constant.Definition{
		Name:             "VonKlitzingConstant",
		Symbol:           "R_K",
		Description:      "von Klitzing constant",
		Reference:        reference,
		Unit:             unit.Ohm,
		Value:            25812.8074555,
		Exact:            "25812.8074555",
		Uncertainty:      5.9e-6,
		ExactUncertainty: "5.9e-6",
	})

	MagneticFluxQuantum = constant.MustDefine(constant.Definition{
		Name:             "MagneticFluxQuantum",
		Symbol:           "Phi_0",
		Description:      "Magnetic flux quantum",
		Reference:        reference,
		Unit:             unit.Weber,
		Value:            2.067833831e-15,
		Exact:            "2.067833831e-15",
		Uncertainty:      1.3e-23,
		ExactUncertainty: "1.3e-23",
	})

	ConductanceQuantum = constant.MustDefine(constant.Definition{
		Name:             "ConductanceQuantum",
		Symbol:           "G_0",
		Description:      "Conductance quantum",
		Reference:        reference,
		Unit:             unit.Siemens,
		Value:            7.7480917310e-5,
		Exact:            "7.7480917310e-5",
		Uncertainty:      1.8e-14,
		ExactUncertainty: "1.8e-14",
	})

	// MagneticConstant is 4 pi 1e-7, exact in the 2014 adjustment.
	MagneticConstant = constant.MustDefineDerived(constant.DerivedDefinition{
		Name:        "MagneticConstant",
		Symbol:      "mu_0",
		Description: "Magnetic constant",
		Reference:   reference,
		Unit:        unit.NewtonPerAmpereSquared,
		Formula: func(e *constant.Eval) scalar.Value {
			return scalar.Mul(scalar.Mul(e.Lit(4), e.Pi()), e.Dec("1e-7"))
		},
	})

	// ElectricConstant is 1/(mu_0 c^2).
	ElectricConstant = constant.MustDefineDerived(constant.DerivedDefinition{
		Name:        "ElectricConstant",
		Symbol:      "epsilon_0",
		Description: "Electric constant",
		Reference:   reference,
		Unit:        unit.FaradPerMeter,
		Formula: func(e *constant.Eval) scalar.Value {
			c := e.Const(SpeedOfLightInVacuum)
			return scalar.Div(e.Lit(1), scalar.Mul(e.Const(MagneticConstant), scalar.Mul(c, c)))
		},
	})

	// CharacteristicImpedanceOfVacuum is mu_0 c.
	CharacteristicImpedanceOfVacuum = constant.MustDefineDerived(constant.DerivedDefinition{
		Name:        "CharacteristicImpedanceOfVacuum",
		Symbol:      "Z_0",
		Description: "Characteristic impedance of vacuum",
		Reference:   reference,
		Unit:        unit.Ohm,
		Formula: func(e *constant.Eval) scalar.Value {
			return scalar.Mul(e.Const(MagneticConstant), e.Const(SpeedOfLightInVacuum))
		},
	})
)
