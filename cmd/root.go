// Package cmd provides the root command and CLI setup for kata.
package cmd

import (
	"os"

	"github.com/mouse-blink/kata/internal/controller"
	"github.com/mouse-blink/kata/internal/domain"
	"github.com/mouse-blink/kata/internal/domain/snippets"
	m "github.com/mouse-blink/kata/internal/model"
	"github.com/spf13/cobra"
)

var registry domain.Registry
var ui controller.UI

func init() {
	registry = domain.NewRegistry()

	if err := snippets.RegisterAll(registry); err != nil {
		panic(err)
	}

	ui = controller.NewUI(rootCmd, registry, controller.IsTTY(os.Stdout))
}

var listFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kata",
		Short: "Closure tutorial snippet runner",
		Long: `Kata runs an ordered registry of small closure-teaching snippets and
reports their output: named and anonymous callables, counters with captured
state, capture by reference vs by value, weak and unowned guards, and the
map/filter/reduce/flatten pipeline.

Without a subcommand it runs every snippet in registration order. One
snippet fails on purpose to show that a failure never stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listFlag {
				return ui.DisplayList(registry.Snippets())
			}

			return runAndReport(cmd)
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list registered snippets instead of running them")

	return cmd
}

// runAndReport runs the named snippets (all when names is empty), displays
// the result and converts a failing run into a non-zero exit.
func runAndReport(cmd *cobra.Command, names ...string) error {
	result, err := registry.Run(names...)
	if err != nil {
		return err
	}

	if err := ui.DisplayRun(result); err != nil {
		return err
	}

	if result.Failed() {
		cmd.SilenceUsage = true

		return &m.RunFailedError{Failures: result.Failures}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
