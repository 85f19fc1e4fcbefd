// Package main is the entry point for the motor-premium CLI.
package main

import (
	"os"

	"motor-premium/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
