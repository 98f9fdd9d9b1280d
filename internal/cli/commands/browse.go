package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/codata/internal/tui"
	"github.com/leapstack-labs/codata/pkg/constant"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse constants interactively",
		Long: `Open an interactive terminal browser over the constant registry.

Filter by typing, move with the arrow keys or j/k, and press enter to
toggle the detail view for the selected constant.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := GetEnv(cmd.Context())
			model := tui.NewBrowserModel(constant.List(), env)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}
}
