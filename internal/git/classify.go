package git

import (
	"errors"
	"fmt"
	"strings"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

// stderr fragments git emits for each failure kind. Matching is substring
// based, the same way the remote rejection checks in push handling work.
var (
	networkPatterns = []string{
		"could not resolve host",
		"unable to access",
		"connection refused",
		"connection timed out",
		"operation timed out",
		"network is unreachable",
	}
	authPatterns = []string{
		"authentication failed",
		"permission denied",
		"could not read username",
		"could not read password",
		"invalid credentials",
		"returned error: 403",
		"403 forbidden",
	}
	nonFastForwardPatterns = []string{
		"non-fast-forward",
		"fetch first",
		"[rejected]",
		"stale info",
	}
	conflictPatterns = []string{
		"merge conflict",
		"automatic merge failed",
		"needs merge",
		"not possible to fast-forward",
		"have diverged",
		"overwritten by merge",
	}
	nothingToCommitPatterns = []string{
		"nothing to commit",
		"no changes added to commit",
	}
)

// ClassifyError inspects a failed git command and wraps it with the sentinel
// error kind its output indicates, so callers can use errors.Is to branch on
// the failure cause. Unrecognized failures are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var cmdErr *gitflowerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return err
	}
	output := strings.ToLower(cmdErr.Output())

	// Auth before network: "unable to access" often wraps an HTTP 403.
	if matchesAny(output, authPatterns) {
		return fmt.Errorf("%w: %w", gitflowerrors.ErrAuthFailure, err)
	}
	if matchesAny(output, networkPatterns) {
		return fmt.Errorf("%w: %w", gitflowerrors.ErrNetworkFailure, err)
	}
	if matchesAny(output, nonFastForwardPatterns) {
		return fmt.Errorf("%w: %w", gitflowerrors.ErrNonFastForward, err)
	}
	if matchesAny(output, conflictPatterns) {
		return fmt.Errorf("%w: %w", gitflowerrors.ErrMergeConflict, err)
	}
	if matchesAny(output, nothingToCommitPatterns) {
		return fmt.Errorf("%w: %w", gitflowerrors.ErrNothingToCommit, err)
	}
	return err
}

func matchesAny(output string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(output, p) {
			return true
		}
	}
	return false
}
