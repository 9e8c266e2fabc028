// Package main is the main package for the countstat CLI.
package main

import (
	"os"

	"github.com/umwelt-studio/countstat/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
