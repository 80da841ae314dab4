// Package main is the entry point for the hevbuilder CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/hev-builder/internal/errors"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
