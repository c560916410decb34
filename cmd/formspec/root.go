package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formspec",
	Short: "Derive and validate form specifications",
	Long: `formspec derives validation and UI schemas from authored form spec
documents and checks them against environment capability constraints.`,
	SilenceUsage: true,
}

// exitCode is set by subcommands that finish their run but still need a
// non-zero exit, such as validate finding error-severity issues. main exits
// with it after Execute returns, so cobra's return path and deferred output
// are never bypassed.
var exitCode int

// Execute runs the root command and reports the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
