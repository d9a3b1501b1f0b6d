package main

import (
	"os"

	"github.com/solarlune/transformblend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
