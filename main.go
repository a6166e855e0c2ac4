// Package main is the entry point for the safe-ascii CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/eykd/safe-ascii/cmd"
)

// Version information, injected at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cmd.HandleError(os.Stderr, err))
	}
}
