package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/codata/internal/cli/config"
	"github.com/leapstack-labs/codata/internal/cli/output"
	"github.com/leapstack-labs/codata/internal/describe"
	"github.com/leapstack-labs/codata/pkg/constant"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var wide bool

	cmd := &cobra.Command{
		Use:   "show <name|symbol>",
		Short: "Show one constant in detail",
		Long: `Show a single constant with its value, standard uncertainty,
relative standard uncertainty, and provenance.

Constants resolve by registry name or by symbol, so "show c" and
"show SpeedOfLightInVacuum" are equivalent.`,
		Example: `  # Show the Planck constant
  codata show h

  # Show it at the configured working precision
  codata show h --wide

  # Raise the working precision for this invocation
  codata show hbar --wide -p 1024`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return constant.Default().Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], wide)
		},
	}

	cmd.Flags().BoolVarP(&wide, "wide", "w", false, "Render at the configured working precision")

	return cmd
}

func runShow(cmd *cobra.Command, key string, wide bool) error {
	r := GetRenderer(cmd.Context())
	log := config.GetLogger(cmd.Context())

	c, err := constant.Get(key)
	if err != nil {
		return err
	}

	var info describe.Info
	if wide {
		env := GetEnv(cmd.Context())
		log.Debug("rendering constant", "name", c.Name(), "bits", env.Bits())
		info = describe.ConstantAt(c, env)
	} else {
		log.Debug("rendering constant", "name", c.Name(), "bits", "fixed")
		info = describe.Constant(c)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		showBlock(info, r)
		return nil
	}
}

// showBlock renders the detail block shared by the text and markdown
// modes.
func showBlock(info describe.Info, r *output.Renderer) {
	r.Header(1, info.Description+" ("+info.Symbol+")")
	r.KeyValue("Value", info.Value+" "+info.Unit)
	if info.Exact {
		r.KeyValue("Standard uncertainty", "(exact)")
	} else {
		r.KeyValue("Standard uncertainty", info.Uncertainty+" "+info.Unit)
		r.KeyValue("Relative standard uncertainty", info.RelativeUncertainty)
	}
	if info.Derived {
		r.KeyValue("Defined as", "derived from other constants")
	}
	r.KeyValue("Reference", info.Reference)
}
