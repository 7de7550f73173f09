package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to the remote and sets its upstream.
// Rejections are classified so callers can report non-fast-forward and
// auth failures by kind; there is no automatic retry.
func PushBranch(ctx context.Context, branchName, remote string) error {
	_, err := RunGitCommandWithContext(ctx, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, ClassifyError(err))
	}
	return nil
}
