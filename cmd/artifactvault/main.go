package main

import (
	"os"

	"github.com/schoolboyqueue/artifactvault/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			os.Stderr.WriteString("Error: " + msg + "\n")
		}
		os.Exit(cli.ExitCode(err))
	}
}
