// Package main is the entry point for the tracefire CLI/TUI.
package main

import (
	"os"

	"github.com/tracefire-io/tracefire/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
