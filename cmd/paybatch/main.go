// Package main is the entry point for the paybatch CLI/TUI.
package main

import (
	"os"

	"github.com/paybatch-io/paybatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
