// Command staggrid builds, inspects and plots one-dimensional staggered grids.
//
//	staggrid generate --cells 8 --ghosts 2 --lower 0 --upper 1 -o grid.yaml
//	staggrid describe grid.yaml
//	staggrid plot grid.yaml -o grid.png
package main

import (
	"os"

	"github.com/katalvlaran/staggrid/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
