// Package cli builds the cobra command surface for gitflow.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/workflow"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		branch    string
		message   string
		remote    string
		assumeYes bool
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:   "gitflow",
		Short: "Gitflow drives a guided git workflow: fetch, pull, branch, stage, commit, push",
		Long: `Gitflow drives a guided git workflow against the current repository:

fetch the remote, fast-forward the current branch (stashing and restoring
uncommitted changes around the pull), create or switch to a branch, stage
everything, commit with a confirmed message, and push.

The run stops at the first failing step and reports its cause.`,
		Version:       formatVersion(version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				// The step logger reads DEBUG when it is constructed.
				_ = os.Setenv("DEBUG", "1")
			}

			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Splog.Close() }()

			if remote == "" {
				remote = resolveRemote(ctx.RepoRoot)
			}
			if !cmd.Flags().Changed("yes") {
				if configured, err := config.GetAssumeYes(ctx.RepoRoot); err == nil {
					assumeYes = configured
				}
			}

			return workflow.Run(ctx, workflow.Options{
				BranchName: branch,
				Message:    message,
				Remote:     remote,
				AssumeYes:  assumeYes,
			})
		},
	}

	rootCmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name to create or switch to")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message to use")
	rootCmd.Flags().StringVar(&remote, "remote", "", "Remote to fetch from and push to (default from repo config, then git config)")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Never prompt; stay on the current branch unless -b is given")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// resolveRemote picks the remote when no flag is given: repo config first,
// then git's remote.pushDefault, then "origin".
func resolveRemote(repoRoot string) string {
	if configured, err := config.GetRemote(repoRoot); err == nil && configured != "" {
		return configured
	}
	return git.GetRemote()
}

func formatVersion(version, commit, date string) string {
	return version + " (" + commit + ", " + date + ")"
}
