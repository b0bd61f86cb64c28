// Command decimalcalc is a small command-line front end for the decimal
// package: the "surrounding evaluator" spec §1 deliberately keeps outside
// the core, exercising the arithmetic kernels against operands and type
// descriptors given on the command line and deciding what to do with the
// overflow/underflow/NaN flags the core reports back.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
