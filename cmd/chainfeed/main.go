// Package main is the entry point for the chainfeed TUI.
package main

import (
	"os"

	"chainfeed/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
