package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/counterreg/netlist"
)

var netlistCmd = &cobra.Command{
	Use:   "netlist",
	Short: "Export the gate-level netlist of the counter.",
	Long: "`netlist --format blif` writes the bit-blasted counter as BLIF, " +
		"`netlist --format json` as a JSON gate list.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		out := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			out = f
		}

		return writeNetlist(out, format)
	},
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.Flags().String("format", "blif", "Output format, blif or json")
	netlistCmd.Flags().StringP("out", "o", "", "Output file, stdout if empty")
}

func writeNetlist(w io.Writer, format string) error {
	m := netlist.BuildCounter()

	switch format {
	case "blif":
		return m.WriteBLIF(w)
	case "json":
		return m.WriteJSON(w)
	default:
		return fmt.Errorf("unknown netlist format %q", format)
	}
}
