// Package main provides the hebtok command-line interface.
package main

import (
	"os"

	"github.com/leapstack-labs/hebtok/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
