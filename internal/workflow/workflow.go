// Package workflow drives the guided fetch → pull → branch → stage → commit
// → push sequence against a git.Runner, reporting each step as it runs.
package workflow

import (
	"fmt"
	"strings"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui/style"
	"gitflow.dev/gitflow/internal/utils"
)

// State identifies how far the workflow has progressed. Each step advances
// to the next state or stops the run at StateFailed.
type State int

const (
	StateStart State = iota
	StateFetched
	StatePulled
	StateBranchReady
	StateStaged
	StateCommitted
	StatePushed
	StateFailed
)

// String returns the step name used in failure reports
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateFetched:
		return "fetch"
	case StatePulled:
		return "pull"
	case StateBranchReady:
		return "branch"
	case StateStaged:
		return "stage"
	case StateCommitted:
		return "commit"
	case StatePushed:
		return "push"
	default:
		return "failed"
	}
}

// StepError reports the step a run failed at together with the cause.
type StepError struct {
	Step State
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Options holds the run parameters collected from the CLI.
type Options struct {
	// BranchName is the branch to create or switch to; prompted for when
	// empty and interactive.
	BranchName string

	// Message is the commit message; prompted for and confirmed when empty.
	Message string

	// Remote is the remote fetched from and pushed to.
	Remote string

	// AssumeYes skips interactive prompts: no branch prompt (stay on the
	// current branch) and no message confirmation.
	AssumeYes bool
}

const stashMarker = "gitflow: auto-stash before pull"

// Run executes the workflow from Start through Pushed. The first failing
// step stops the run; the returned *StepError names the step and cause.
// All git mutations happen directly on the real repository; the only
// rollback guard is the stash restore around the pull.
func Run(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog
	splog.Banner("Starting gitflow")

	fail := func(step State, err error) error {
		splog.Error("%s step failed: %v", step, err)
		return &StepError{Step: step, Err: err}
	}

	// Start → Fetched
	splog.Step("Fetch")
	exists, err := ctx.Runner.RemoteExists(opts.Remote)
	if err != nil {
		return fail(StateFetched, err)
	}
	if !exists {
		return fail(StateFetched, fmt.Errorf("remote %q is not configured", opts.Remote))
	}
	if err := ctx.Runner.Fetch(ctx.Context, opts.Remote); err != nil {
		return fail(StateFetched, err)
	}
	splog.Ok("Fetched %s", style.Branch(opts.Remote))

	// Fetched → Pulled
	splog.Step("Pull")
	if err := pullWithStashGuard(ctx, opts.Remote); err != nil {
		return fail(StatePulled, err)
	}

	// Pulled → BranchReady
	splog.Step("Branch Setup")
	branch, err := ensureBranch(ctx, opts)
	if err != nil {
		return fail(StateBranchReady, err)
	}

	// BranchReady → Staged
	splog.Step("Stage")
	if err := ctx.Runner.StageAll(ctx.Context); err != nil {
		return fail(StateStaged, err)
	}
	staged, err := ctx.Runner.HasStagedChanges(ctx.Context)
	if err != nil {
		return fail(StateStaged, err)
	}
	if !staged {
		return fail(StateStaged, gitflowerrors.ErrNothingToCommit)
	}
	splog.Ok("Staged all changes")

	// Staged → Committed
	splog.Step("Commit")
	message, err := resolveMessage(ctx, opts)
	if err != nil {
		return fail(StateCommitted, err)
	}
	if err := ctx.Runner.Commit(ctx.Context, message); err != nil {
		return fail(StateCommitted, err)
	}
	splog.Ok("Committed: %q", message)

	// Committed → Pushed
	splog.Step("Push")
	if err := ctx.Runner.Push(ctx.Context, branch, opts.Remote); err != nil {
		return fail(StatePushed, err)
	}
	splog.Ok("Pushed %s to %s", style.Branch(branch), style.Branch(opts.Remote))

	splog.Newline()
	splog.Banner("Gitflow complete")
	return nil
}

// pullWithStashGuard fast-forwards the current branch. Uncommitted local
// changes are stashed first and restored afterwards; a stash that cannot be
// restored is surfaced explicitly, never dropped.
func pullWithStashGuard(ctx *runtime.Context, remote string) error {
	splog := ctx.Splog

	dirty, err := ctx.Runner.HasLocalChanges(ctx.Context)
	if err != nil {
		return err
	}

	if dirty {
		if _, err := ctx.Runner.StashPush(ctx.Context, stashMarker); err != nil {
			return err
		}
		splog.Info("Stashed local changes before pull")
	}

	result, pullErr := ctx.Runner.Pull(ctx.Context, remote)

	if dirty {
		if popErr := ctx.Runner.StashPop(ctx.Context); popErr != nil {
			// The pull outcome no longer matters: report the stranded
			// stash, which the user must resolve by hand.
			return popErr
		}
		splog.Info("Restored stashed changes")
	}

	if pullErr != nil {
		return pullErr
	}

	switch result {
	case git.PullDone:
		splog.Ok("Pulled latest changes")
	case git.PullUnneeded:
		splog.Ok("Already up to date")
	case git.PullConflict:
		return gitflowerrors.ErrMergeConflict
	}
	return nil
}

// ensureBranch validates the requested branch name and switches to it,
// creating it first when it does not exist. With no name it prompts, or
// stays on the current branch when prompting is off.
func ensureBranch(ctx *runtime.Context, opts Options) (string, error) {
	splog := ctx.Splog

	name := strings.TrimSpace(opts.BranchName)
	if name != "" {
		if err := utils.ValidateBranchName(name); err != nil {
			return "", err
		}
		return switchToBranch(ctx, name)
	}

	if opts.AssumeYes || ctx.Prompter == nil {
		current, err := ctx.Runner.CurrentBranch()
		if err != nil {
			return "", err
		}
		splog.Info("Staying on branch %s", style.Branch(current))
		return current, nil
	}

	// Re-prompt until a valid name, like the interactive branch setup of
	// the original tool. An empty answer keeps the current branch.
	for {
		answer, err := ctx.Prompter.Input("Enter branch name (empty to stay on current):", "")
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			current, err := ctx.Runner.CurrentBranch()
			if err != nil {
				return "", err
			}
			splog.Info("Staying on branch %s", style.Branch(current))
			return current, nil
		}
		if err := utils.ValidateBranchName(answer); err != nil {
			splog.Warn("%v", err)
			continue
		}
		return switchToBranch(ctx, answer)
	}
}

func switchToBranch(ctx *runtime.Context, name string) (string, error) {
	splog := ctx.Splog

	exists, err := ctx.Runner.BranchExists(name)
	if err != nil {
		return "", err
	}
	if exists {
		if err := ctx.Runner.CheckoutBranch(ctx.Context, name); err != nil {
			return "", err
		}
		splog.Ok("Checked out existing branch: %s", style.Branch(name))
		return name, nil
	}

	if err := ctx.Runner.CreateAndCheckoutBranch(ctx.Context, name); err != nil {
		return "", err
	}
	splog.Ok("Switched to new branch: %s", style.Branch(name))
	return name, nil
}

// resolveMessage returns the commit message to use. A message supplied on
// the command line is used as-is; otherwise the user is prompted, shown the
// message back, and must confirm it. Empty or unconfirmed messages abort.
func resolveMessage(ctx *runtime.Context, opts Options) (string, error) {
	message := strings.TrimSpace(opts.Message)
	if message != "" {
		return message, nil
	}
	if opts.Message != "" {
		// Flag was given but blank once trimmed.
		return "", gitflowerrors.ErrEmptyMessage
	}

	if opts.AssumeYes || ctx.Prompter == nil {
		return "", gitflowerrors.ErrEmptyMessage
	}

	answer, err := ctx.Prompter.Input("Enter commit message:", "")
	if err != nil {
		return "", err
	}
	message = strings.TrimSpace(answer)
	if message == "" {
		return "", gitflowerrors.ErrEmptyMessage
	}

	ctx.Splog.Info("Commit message: %q", message)
	confirmed, err := ctx.Prompter.Confirm("Use this message?", false)
	if err != nil {
		return "", err
	}
	if !confirmed {
		return "", gitflowerrors.ErrEmptyMessage
	}
	return message, nil
}
