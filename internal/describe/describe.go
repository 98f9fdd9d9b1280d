// Package describe turns registered constants into display records:
// formatted magnitudes, uncertainties, and metadata ready for the CLI
// renderers and the TUI.
package describe

import (
	"math"
	"math/big"
	"strconv"

	"github.com/leapstack-labs/codata/pkg/constant"
	"github.com/leapstack-labs/codata/pkg/prec"
)

// Info is the flattened, display-ready view of one constant.
type Info struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Unit        string `json:"unit"`

	Value               string `json:"value"`
	Uncertainty         string `json:"uncertainty,omitempty"`
	RelativeUncertainty string `json:"relative_uncertainty,omitempty"`

	Exact   bool `json:"exact"`
	Derived bool `json:"derived"`

	// Precision is the working precision in bits the magnitudes were
	// rendered at; 0 means fixed (float64) precision.
	Precision uint `json:"precision,omitempty"`
}

// Constant builds the fixed-precision view of c.
func Constant(c constant.Constant) Info {
	info := meta(c)
	info.Value = formatFloat(c.Value().Float64())
	if !info.Exact {
		unc := c.Uncertainty().Float64()
		info.Uncertainty = formatFloat(unc)
		info.RelativeUncertainty = formatFloat(relative(unc, c.Value().Float64()))
	}
	return info
}

// ConstantAt builds the view of c at the working precision of env.
func ConstantAt(c constant.Constant, env *prec.Env) Info {
	bits := env.Bits()
	info := meta(c)
	info.Precision = bits

	digits := decimalDigits(bits)
	info.Value = formatBig(c.BigValue(env).Big(bits), digits)
	if !info.Exact {
		unc := c.BigUncertainty(env).Big(bits)
		info.Uncertainty = formatBig(unc, 2)
		rel := new(big.Float).SetPrec(bits).Quo(unc, c.BigValue(env).Big(bits))
		info.RelativeUncertainty = formatBig(rel.Abs(rel), 2)
	}
	return info
}

func meta(c constant.Constant) Info {
	return Info{
		Name:        c.Name(),
		Symbol:      c.Symbol(),
		Description: c.Description(),
		Reference:   c.Reference(),
		Unit:        c.Unit().Symbol(),
		Exact:       c.IsExact(),
		Derived:     c.IsDerived(),
	}
}

// decimalDigits is the number of significant decimal digits carried by
// a binary precision: bits * log10(2), rounded down, at least one.
func decimalDigits(bits uint) int {
	d := int(float64(bits) * math.Log10(2))
	if d < 1 {
		d = 1
	}
	return d
}

func relative(unc, val float64) float64 {
	if val == 0 {
		return 0
	}
	return math.Abs(unc / val)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatBig(f *big.Float, digits int) string {
	return f.Text('g', digits)
}
