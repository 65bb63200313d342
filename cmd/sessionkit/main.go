package main

import (
	"os"

	"github.com/creait/sessionkit/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
