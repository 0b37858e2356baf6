// Package main is the entry point for the ACRONYM CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/acronym/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
