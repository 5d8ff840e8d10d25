// Command scistats exposes the library's simulation and planning routines
// on the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scistats: %v\n", err)
		os.Exit(1)
	}
}
