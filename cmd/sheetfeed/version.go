package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VERSION = "v0.3.1"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", VERSION)
		},
	}
}
