package git

import (
	"context"
	"errors"
	"strings"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

// PullResult represents the result of a pull operation
type PullResult int

const (
	// PullDone indicates the pull fast-forwarded the branch
	PullDone PullResult = iota
	// PullUnneeded indicates no pull was needed
	PullUnneeded
	// PullConflict indicates the branch could not be fast-forwarded
	PullConflict
)

// PullCurrentBranch fast-forwards the current branch from the remote.
// Only fast-forward merges are attempted; diverged history is reported as
// PullConflict rather than creating a merge commit underneath the user.
func PullCurrentBranch(ctx context.Context, remote string) (PullResult, error) {
	branchName, err := GetCurrentBranch()
	if err != nil {
		return PullConflict, err
	}

	oldRev, err := RunGitCommandWithContext(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullConflict, err
	}

	_, err = RunGitCommandWithContext(ctx, "pull", "--ff-only", remote, branchName)
	if err != nil {
		// A branch that was never pushed has no remote ref to pull.
		var cmdErr *gitflowerrors.GitCommandError
		if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Output(), "couldn't find remote ref") {
			return PullUnneeded, nil
		}
		return PullConflict, ClassifyError(err)
	}

	newRev, err := RunGitCommandWithContext(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullDone, err
	}
	if oldRev == newRev {
		return PullUnneeded, nil
	}
	return PullDone, nil
}
