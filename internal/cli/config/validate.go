package config

import (
	"fmt"

	"github.com/leapstack-labs/codata/pkg/prec"
)

// maxPrecision bounds the configurable working precision. Evaluating
// pi above this gets slow enough to look like a hang.
const maxPrecision = 1 << 20

// validOutputs are the accepted values for the output setting.
var validOutputs = []string{"auto", "text", "markdown", "json"}

// Validate checks the resolved configuration for values the rest of
// the CLI cannot work with.
func Validate(cfg *Config) error {
	if cfg.Precision < prec.MinBits {
		return fmt.Errorf("precision %d is below the minimum of %d bits", cfg.Precision, prec.MinBits)
	}
	if cfg.Precision > maxPrecision {
		return fmt.Errorf("precision %d exceeds the maximum of %d bits", cfg.Precision, maxPrecision)
	}
	for _, v := range validOutputs {
		if cfg.Output == v {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (expected one of %v)", cfg.Output, validOutputs)
}
