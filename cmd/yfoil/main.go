// Package main provides the entry point for the yfoil CLI.
package main

import (
	"os"

	"github.com/yfoil/yfoil/cmd/yfoil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
