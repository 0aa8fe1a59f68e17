// Package main provides the wordladder command.
package main

import (
	"os"

	"github.com/katalvlaran/wordladder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
