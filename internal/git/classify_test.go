package git_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
)

func cmdError(stderr string) error {
	return gitflowerrors.NewGitCommandError("git", []string{"push"}, "", stderr, errors.New("exit status 1"))
}

func TestClassifyError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, git.ClassifyError(nil))
	})

	t.Run("network failures", func(t *testing.T) {
		stderrs := []string{
			"fatal: Could not resolve host: github.com",
			"fatal: unable to access 'https://example.com/repo.git/': Connection timed out",
		}
		for _, stderr := range stderrs {
			err := git.ClassifyError(cmdError(stderr))
			require.ErrorIs(t, err, gitflowerrors.ErrNetworkFailure, "stderr: %s", stderr)
		}
	})

	t.Run("auth failures", func(t *testing.T) {
		stderrs := []string{
			"fatal: Authentication failed for 'https://example.com/repo.git/'",
			"git@example.com: Permission denied (publickey).",
			"remote: Invalid credentials",
			"fatal: could not read Username for 'https://example.com': terminal prompts disabled",
			"fatal: unable to access 'https://example.com/repo.git/': The requested URL returned error: 403",
		}
		for _, stderr := range stderrs {
			err := git.ClassifyError(cmdError(stderr))
			require.ErrorIs(t, err, gitflowerrors.ErrAuthFailure, "stderr: %s", stderr)
		}
	})

	t.Run("bare 403 digits are not an auth failure", func(t *testing.T) {
		orig := cmdError("remote: Counting objects: 4403, done.\nfatal: the remote end hung up unexpectedly")
		err := git.ClassifyError(orig)
		require.NotErrorIs(t, err, gitflowerrors.ErrAuthFailure)
	})

	t.Run("non-fast-forward rejections", func(t *testing.T) {
		stderr := ` ! [rejected]        main -> main (non-fast-forward)
error: failed to push some refs
hint: Updates were rejected because the remote contains work that you do not have locally.`
		err := git.ClassifyError(cmdError(stderr))
		require.ErrorIs(t, err, gitflowerrors.ErrNonFastForward)
	})

	t.Run("merge conflicts", func(t *testing.T) {
		stderrs := []string{
			"CONFLICT (content): Merge conflict in main.go\nAutomatic merge failed; fix conflicts and then commit the result.",
			"fatal: Not possible to fast-forward, aborting.",
			"error: Your local changes to the following files would be overwritten by merge:",
		}
		for _, stderr := range stderrs {
			err := git.ClassifyError(cmdError(stderr))
			require.ErrorIs(t, err, gitflowerrors.ErrMergeConflict, "stderr: %s", stderr)
		}
	})

	t.Run("nothing to commit", func(t *testing.T) {
		err := git.ClassifyError(cmdError("nothing to commit, working tree clean"))
		require.ErrorIs(t, err, gitflowerrors.ErrNothingToCommit)
	})

	t.Run("original error stays reachable", func(t *testing.T) {
		orig := cmdError("fatal: Could not resolve host: github.com")
		err := git.ClassifyError(orig)

		var cmdErr *gitflowerrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Contains(t, cmdErr.Stderr, "resolve host")
	})

	t.Run("unrecognized failures pass through", func(t *testing.T) {
		orig := cmdError("fatal: something unexpected")
		err := git.ClassifyError(orig)
		require.Equal(t, orig, err)

		plain := errors.New("not a git error")
		require.Equal(t, plain, git.ClassifyError(plain))
	})
}
