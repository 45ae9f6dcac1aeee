// claudelint - layering linter for .claude context directories
// Source: https://github.com/ariel-frischer/claudelint

package main

import (
	"os"

	"github.com/ariel-frischer/claudelint/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
