package git

import (
	"context"
)

// Commit creates a commit with the given message.
// The message is always supplied up front, so no editor is ever opened.
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	if err != nil {
		return ClassifyError(err)
	}
	return nil
}
