// Countersim simulates the 4-bit counter register and exports its netlist.
package main

import "github.com/sarchlab/counterreg/countersim/cmd"

func main() {
	cmd.Execute()
}
