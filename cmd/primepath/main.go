package main

import (
	"os"

	"github.com/katalvlaran/primepath/internal/cli"
)

// main is the entrypoint for the primepath binary. The command builds its
// own logger from configuration and reports errors on stderr itself.
func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
