package main

import (
	"errors"
	"fmt"
	"os"

	"gitflow.dev/gitflow/internal/cli"
	"gitflow.dev/gitflow/internal/workflow"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Step failures were already reported by the workflow logger.
		var stepErr *workflow.StepError
		if !errors.As(err, &stepErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
