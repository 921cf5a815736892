// Package main is the entry point for caseinvoke, the local driver for the
// case creator handler.
package main

import (
	"os"

	"github.com/deppfellow/connect-case-creator/cmd/caseinvoke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
