package cmd

import (
	m "github.com/mouse-blink/kata/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <name>",
		Short: "Run a single snippet and print its lines",
		Long:  "Run one snippet and print only its output lines, without the summary table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := registry.Run(args[0])
			if err != nil {
				return err
			}

			if err := ui.DisplayLines(result.Lines); err != nil {
				return err
			}

			if result.Failed() {
				cmd.SilenceUsage = true

				return &m.RunFailedError{Failures: result.Failures}
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
