package main

import (
	"os"

	"github.com/chaz8081/proboot/internal/cli"
)

func main() {
	// Execute already printed the error.
	os.Exit(cli.ExitCode(cli.Execute()))
}
