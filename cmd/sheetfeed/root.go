package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sheetfeed",
		Short:         "Publishes translation and interpretation request feeds from a Google Sheets worksheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
