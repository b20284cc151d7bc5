// Package cmd provides the command-line interface of countersim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "countersim",
	Short: "Countersim simulates a 4-bit synchronous counter register.",
	Long: `Countersim simulates a 4-bit synchronous counter register driven ` +
		`by a clock, with reset and enable sampled at every rising edge. ` +
		`It can also export the gate-level netlist of the register.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
