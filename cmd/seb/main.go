// Command seb builds scattering structures from description files and
// prints their symbolic expressions, sizes and intensity curves.
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
