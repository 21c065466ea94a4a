// Package main provides the entry point for the catalog insights CLI.
package main

import (
	"fmt"
	"os"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(domainerrors.ExitCode(err))
	}
}
