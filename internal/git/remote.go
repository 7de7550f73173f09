package git

import (
	"context"
)

// Fetch updates remote-tracking refs from the given remote
func Fetch(ctx context.Context, remote string) error {
	_, err := RunGitCommandWithContext(ctx, "fetch", remote)
	if err != nil {
		return ClassifyError(err)
	}
	return nil
}

// GetRemote returns the default remote name (usually "origin")
func GetRemote() string {
	remote, err := RunGitCommand("config", "--get", "remote.pushDefault")
	if err == nil && remote != "" {
		return remote
	}
	return "origin"
}
