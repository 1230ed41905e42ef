// Command strtab is an interactive harness for the intern package: a
// single in-memory string table driven by line commands.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strtab",
	Short: "De-duplicating string table",
	Long: `strtab tracks de-duplicated strings with stable numeric ids,
indexed both by text and by id.`,
}

var colorMode string

func main() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&colorMode, "color",
		envStr("STRTAB_COLOR", "auto"), "colorize output (auto|on|off)")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		switch colorMode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
		// "auto" keeps the color library's own terminal detection.
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
