package main

import (
	"os"

	"github.com/idilsaglam/relist/internal/cli"
)

func main() {
	// Hand everything to the command tree; it maps errors to exit codes.
	os.Exit(cli.Run(os.Args[1:]))
}
