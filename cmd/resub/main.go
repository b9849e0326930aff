package main

import (
	"os"

	"github.com/ojji/Resub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
