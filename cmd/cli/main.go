// Package main is the entry point for the roicheck CLI.
package main

import (
	"os"

	"roicheck/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
