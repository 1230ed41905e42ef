package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"strtab/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
