// Command codata looks up the CODATA recommended values of the
// fundamental physical constants.
package main

import (
	"os"

	"github.com/leapstack-labs/codata/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
