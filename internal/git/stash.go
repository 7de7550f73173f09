package git

import (
	"context"
	"fmt"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

// StashPush pushes current changes, including untracked files, to the stash
func StashPush(ctx context.Context, message string) (string, error) {
	args := []string{"stash", "push", "-u"}
	if message != "" {
		args = append(args, "-m", message)
	}
	output, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("stash push failed: %w", err)
	}
	return output, nil
}

// StashPop pops the most recent stash entry back into the working tree.
// A conflicting pop leaves the stash entry in place; the returned error
// carries that fact so it is never reported as a plain failure.
func StashPop(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "stash", "pop")
	if err != nil {
		return gitflowerrors.NewStashRestoreError("stash@{0}", ClassifyError(err))
	}
	return nil
}
