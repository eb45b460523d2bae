package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered snippets",
		Long:  "List every registered snippet with its position and topic, in registration order.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return ui.DisplayList(registry.Snippets())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
