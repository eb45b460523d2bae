package cmd

import (
	"github.com/mouse-blink/kata/internal/controller"
	"github.com/spf13/cobra"
)

var runInteractiveFlag bool
var runPlainFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [names...]",
		Short: "Run snippets",
		Long: `Run the named snippets, or every registered snippet when no names are
given. Snippets always execute in registration order; a failing snippet is
recorded and the run continues.

With --interactive, opens a snippet browser instead: pick a snippet and run
it on its own, or press 'a' to run everything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runInteractiveFlag {
				tui := controller.NewTUI(cmd.OutOrStdout(), registry)
				defer tui.Close()

				return tui.Start(controller.WithBrowseMode())
			}

			if runPlainFlag {
				previous := ui
				ui = controller.NewSimpleUI(cmd)

				defer func() { ui = previous }()
			}

			return runAndReport(cmd, args...)
		},
	}
	cmd.Flags().BoolVarP(&runInteractiveFlag, "interactive", "i", false, "browse and run snippets interactively")
	cmd.Flags().BoolVar(&runPlainFlag, "plain", false, "force plain text output")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
