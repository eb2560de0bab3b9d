// Command abbrevidx drives the abbrevidx matcher library from the command
// line: load an entry set, query it with a pattern, or synthesize a
// keyword for one of its entries.
package main

import (
	"fmt"
	"os"

	"github.com/abbrevidx/abbrevidx/cmd/abbrevidx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
