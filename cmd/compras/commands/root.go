// Package commands implements the compras operator CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "compras",
		Short: "Operator tools for the purchasing dashboard",
		Long: `compras inspects and maintains a purchasing dashboard installation.

It reads the same config.yaml and environment variables as the API, so it
talks to the same table store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newSetupScriptCmd(), newCheckCmd(), newExportCmd())
	return root
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}
