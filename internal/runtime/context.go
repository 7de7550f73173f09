// Package runtime provides a context type that holds the git runner, prompter
// and logger for use throughout the application. This avoids passing multiple
// parameters.
package runtime

import (
	"context"
	"os"

	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/tui"
	"gitflow.dev/gitflow/internal/utils"
)

// Context provides access to the repository, git runner and output for commands
type Context struct {
	Context  context.Context
	Runner   git.Runner
	Prompter tui.Prompter
	Splog    *tui.Splog
	RepoRoot string
}

// NewContext creates a new context with the given runner, prompter and logger
func NewContext(runner git.Runner, prompter tui.Prompter, splog *tui.Splog) *Context {
	return &Context{
		Context:  context.Background(),
		Runner:   runner,
		Prompter: prompter,
		Splog:    splog,
	}
}

// GetContext opens the repository containing the current working directory
// and wires up the real runner, terminal prompter and logger.
func GetContext() (*Context, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return nil, err
	}

	// Run all git commands from the working copy root.
	git.SetWorkingDir(repo.Root())

	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.GetLogFilePath())
	if err != nil {
		// File logging is best effort; fall back to console only.
		splog = tui.NewSplog()
	}
	splog.Debug("repository root: %s", repo.Root())

	// Prompting is only wired up on a real terminal; otherwise the
	// workflow falls back to its non-interactive behavior.
	var prompter tui.Prompter
	if utils.IsInteractive() {
		prompter = tui.NewSurveyPrompter()
	}

	return &Context{
		Context:  context.Background(),
		Runner:   git.NewRealRunner(repo),
		Prompter: prompter,
		Splog:    splog,
		RepoRoot: repo.Root(),
	}, nil
}
