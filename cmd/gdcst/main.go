// Command gdcst is the CLI front end for the gdcst GDScript reader: parse a
// file or expression, tokenize it, check its round-trip, or dump its tree
// as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/gdcst/cmd/gdcst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
