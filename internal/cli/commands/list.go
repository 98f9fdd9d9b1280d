// Package commands implements the codata subcommands.
package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/codata/internal/cli/config"
	"github.com/leapstack-labs/codata/internal/cli/output"
	"github.com/leapstack-labs/codata/internal/describe"
	"github.com/leapstack-labs/codata/pkg/constant"
)

// listOutput is the JSON envelope for the list command.
type listOutput struct {
	Constants []describe.Info `json:"constants"`
	Total     int             `json:"total"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var exactOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered constants",
		Long: `List every registered constant with its symbol, value, standard
uncertainty, and unit.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all constants (auto-detect output format)
  codata list

  # List constants as JSON
  codata list --output json

  # Only the exact (zero-uncertainty) constants
  codata list --exact`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, exactOnly)
		},
	}

	cmd.Flags().BoolVar(&exactOnly, "exact", false, "Only list exact constants")

	return cmd
}

func runList(cmd *cobra.Command, exactOnly bool) error {
	r := GetRenderer(cmd.Context())
	log := config.GetLogger(cmd.Context())

	constants := constant.List()
	if exactOnly {
		kept := constants[:0]
		for _, c := range constants {
			if c.IsExact() {
				kept = append(kept, c)
			}
		}
		constants = kept
	}
	log.Debug("listing constants", "count", len(constants), "exact_only", exactOnly)

	infos := make([]describe.Info, 0, len(constants))
	for _, c := range constants {
		infos = append(infos, describe.Constant(c))
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(infos, r)
	case output.ModeMarkdown:
		listMarkdown(infos, r)
		return nil
	default:
		listText(infos, r)
		return nil
	}
}

// listText renders a styled table for terminals.
func listText(infos []describe.Info, r *output.Renderer) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Symbol", "Value", "Uncertainty", "Unit"})

	for _, info := range infos {
		unc := info.Uncertainty
		if info.Exact {
			unc = "(exact)"
		}
		t.AppendRow(table.Row{info.Name, info.Symbol, info.Value, unc, info.Unit})
	}

	t.Render()
}

// listMarkdown renders one section per constant.
func listMarkdown(infos []describe.Info, r *output.Renderer) {
	r.Println(output.FormatHeader(1, "Constants"))
	r.Println("")
	for _, info := range infos {
		r.Println(output.FormatHeader(2, info.Name))
		r.Println(output.FormatKeyValue("Symbol", info.Symbol))
		r.Println(output.FormatKeyValue("Value", info.Value+" "+info.Unit))
		if info.Exact {
			r.Println(output.FormatKeyValue("Uncertainty", "(exact)"))
		} else {
			r.Println(output.FormatKeyValue("Uncertainty", info.Uncertainty))
		}
		r.Println(output.FormatKeyValue("Reference", info.Reference))
		r.Println("")
	}
}

func listJSON(infos []describe.Info, r *output.Renderer) error {
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(listOutput{Constants: infos, Total: len(infos)})
}
