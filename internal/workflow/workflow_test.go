package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui"
	"gitflow.dev/gitflow/internal/workflow"
)

// fakeRunner implements git.Runner, recording every call in order.
type fakeRunner struct {
	calls []string

	currentBranch string
	branches      map[string]bool
	remotes       map[string]bool
	dirty         bool
	stashed       bool
	staged        bool

	pullResult git.PullResult

	fetchErr    error
	pullErr     error
	stashPopErr error
	commitErr   error
	pushErr     error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		currentBranch: "main",
		branches:      map[string]bool{"main": true},
		remotes:       map[string]bool{"origin": true},
		pullResult:    git.PullUnneeded,
	}
}

func (f *fakeRunner) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeRunner) RemoteExists(name string) (bool, error) {
	return f.remotes[name], nil
}

func (f *fakeRunner) Fetch(_ context.Context, remote string) error {
	f.record("fetch %s", remote)
	return f.fetchErr
}

func (f *fakeRunner) Pull(_ context.Context, remote string) (git.PullResult, error) {
	f.record("pull %s", remote)
	return f.pullResult, f.pullErr
}

func (f *fakeRunner) Push(_ context.Context, branchName, remote string) error {
	f.record("push %s %s", branchName, remote)
	return f.pushErr
}

func (f *fakeRunner) CurrentBranch() (string, error) {
	return f.currentBranch, nil
}

func (f *fakeRunner) BranchExists(branchName string) (bool, error) {
	return f.branches[branchName], nil
}

func (f *fakeRunner) CheckoutBranch(_ context.Context, branchName string) error {
	f.record("checkout %s", branchName)
	f.currentBranch = branchName
	return nil
}

func (f *fakeRunner) CreateAndCheckoutBranch(_ context.Context, branchName string) error {
	f.record("checkout -b %s", branchName)
	f.branches[branchName] = true
	f.currentBranch = branchName
	return nil
}

func (f *fakeRunner) HasLocalChanges(_ context.Context) (bool, error) {
	return f.dirty, nil
}

func (f *fakeRunner) HasStagedChanges(_ context.Context) (bool, error) {
	return f.staged, nil
}

func (f *fakeRunner) StageAll(_ context.Context) error {
	f.record("stage all")
	return nil
}

func (f *fakeRunner) StashPush(_ context.Context, _ string) (string, error) {
	f.record("stash push")
	f.stashed = true
	f.dirty = false
	return "Saved working directory", nil
}

func (f *fakeRunner) StashPop(_ context.Context) error {
	f.record("stash pop")
	if f.stashPopErr != nil {
		return f.stashPopErr
	}
	f.stashed = false
	f.dirty = true
	return nil
}

func (f *fakeRunner) Commit(_ context.Context, message string) error {
	f.record("commit %q", message)
	return f.commitErr
}

// fakePrompter replays scripted answers.
type fakePrompter struct {
	inputs   []string
	confirms []bool
}

func (p *fakePrompter) Input(_, _ string) (string, error) {
	if len(p.inputs) == 0 {
		return "", errors.New("no scripted input")
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func (p *fakePrompter) Confirm(_ string, _ bool) (bool, error) {
	if len(p.confirms) == 0 {
		return false, errors.New("no scripted confirm")
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func newTestContext(t *testing.T, runner *fakeRunner, prompter tui.Prompter) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	splog, err := tui.NewSplogWithConfig(&buf, "")
	require.NoError(t, err)

	return runtime.NewContext(runner, prompter, splog), &buf
}

func TestRunCleanRepoNewBranch(t *testing.T) {
	// Clean repo, no such branch: fetch, pull with no stash, create and
	// switch, stage, commit with the given message, push.
	runner := newFakeRunner()
	runner.staged = true
	ctx, out := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{
		BranchName: "release/1.0",
		Message:    "fix bug",
		Remote:     "origin",
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"fetch origin",
		"pull origin",
		"checkout -b release/1.0",
		"stage all",
		`commit "fix bug"`,
		"push release/1.0 origin",
	}, runner.calls)
	require.Contains(t, out.String(), "Gitflow complete")
}

func TestRunSwitchesToExistingBranch(t *testing.T) {
	runner := newFakeRunner()
	runner.staged = true
	runner.branches["feature"] = true
	ctx, _ := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{
		BranchName: "feature",
		Message:    "update",
		Remote:     "origin",
	})
	require.NoError(t, err)
	require.Contains(t, runner.calls, "checkout feature")
	require.NotContains(t, runner.calls, "checkout -b feature")
}

func TestRunStaysOnCurrentBranchWithoutName(t *testing.T) {
	runner := newFakeRunner()
	runner.staged = true
	ctx, _ := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{
		Message: "update",
		Remote:  "origin",
	})
	require.NoError(t, err)
	require.Contains(t, runner.calls, "push main origin")
	require.NotContains(t, runner.calls, "checkout main")
}

func TestRunRejectsInvalidBranchName(t *testing.T) {
	// No checkout may happen for a rejected name.
	for _, name := range []string{"release 1.0", "bad\tname", "bad\x01name", "/leading", "trailing/"} {
		runner := newFakeRunner()
		runner.staged = true
		ctx, _ := newTestContext(t, runner, nil)

		err := workflow.Run(ctx, workflow.Options{
			BranchName: name,
			Message:    "msg",
			Remote:     "origin",
		})
		require.Error(t, err)
		require.ErrorIs(t, err, gitflowerrors.ErrInvalidBranchName)

		var stepErr *workflow.StepError
		require.True(t, errors.As(err, &stepErr))
		require.Equal(t, workflow.StateBranchReady, stepErr.Step)

		for _, call := range runner.calls {
			require.NotContains(t, call, "checkout", "no checkout for invalid name %q", name)
		}
	}
}

func TestRunStashGuardAroundPull(t *testing.T) {
	t.Run("dirty tree is stashed before pull and restored after", func(t *testing.T) {
		runner := newFakeRunner()
		runner.dirty = true
		runner.staged = true
		runner.pullResult = git.PullDone
		ctx, _ := newTestContext(t, runner, nil)

		err := workflow.Run(ctx, workflow.Options{
			Message: "msg",
			Remote:  "origin",
		})
		require.NoError(t, err)

		require.Equal(t, []string{"fetch origin", "stash push", "pull origin", "stash pop"}, runner.calls[:4])
		require.False(t, runner.stashed)
	})

	t.Run("clean tree pulls without stashing", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		ctx, _ := newTestContext(t, runner, nil)

		err := workflow.Run(ctx, workflow.Options{
			Message: "msg",
			Remote:  "origin",
		})
		require.NoError(t, err)
		require.NotContains(t, runner.calls, "stash push")
		require.NotContains(t, runner.calls, "stash pop")
	})

	t.Run("failed stash restore stops the run and is reported", func(t *testing.T) {
		runner := newFakeRunner()
		runner.dirty = true
		runner.staged = true
		runner.stashPopErr = gitflowerrors.NewStashRestoreError("stash@{0}", errors.New("conflict"))
		ctx, out := newTestContext(t, runner, nil)

		err := workflow.Run(ctx, workflow.Options{
			Message: "msg",
			Remote:  "origin",
		})
		require.Error(t, err)
		require.ErrorIs(t, err, gitflowerrors.ErrMergeConflict)
		require.Contains(t, out.String(), "preserved in the stash")
		require.NotContains(t, runner.calls, "stage all")
	})

	t.Run("pull conflict stops the run", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		runner.pullResult = git.PullConflict
		ctx, _ := newTestContext(t, runner, nil)

		err := workflow.Run(ctx, workflow.Options{
			Message: "msg",
			Remote:  "origin",
		})
		require.Error(t, err)

		var stepErr *workflow.StepError
		require.True(t, errors.As(err, &stepErr))
		require.Equal(t, workflow.StatePulled, stepErr.Step)
	})
}

func TestRunCommitMessageHandling(t *testing.T) {
	t.Run("empty message halts at the stage boundary without committing", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		ctx, _ := newTestContext(t, runner, nil)

		err := workflow.Run(ctx, workflow.Options{
			Remote: "origin",
		})
		require.ErrorIs(t, err, gitflowerrors.ErrEmptyMessage)

		for _, call := range runner.calls {
			require.NotContains(t, call, "commit")
			require.NotContains(t, call, "push")
		}
	})

	t.Run("prompted message is confirmed before committing", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		prompter := &fakePrompter{
			inputs:   []string{"", "fix bug"}, // branch prompt, then message
			confirms: []bool{true},
		}
		ctx, out := newTestContext(t, runner, prompter)

		err := workflow.Run(ctx, workflow.Options{Remote: "origin"})
		require.NoError(t, err)
		require.Contains(t, runner.calls, `commit "fix bug"`)
		require.Contains(t, out.String(), `Commit message: "fix bug"`)
	})

	t.Run("rejected confirmation aborts without committing", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		prompter := &fakePrompter{
			inputs:   []string{"", "fix bug"},
			confirms: []bool{false},
		}
		ctx, _ := newTestContext(t, runner, prompter)

		err := workflow.Run(ctx, workflow.Options{Remote: "origin"})
		require.ErrorIs(t, err, gitflowerrors.ErrEmptyMessage)

		for _, call := range runner.calls {
			require.NotContains(t, call, "commit")
		}
	})

	t.Run("empty prompted message aborts", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		prompter := &fakePrompter{
			inputs: []string{"", "   "},
		}
		ctx, _ := newTestContext(t, runner, prompter)

		err := workflow.Run(ctx, workflow.Options{Remote: "origin"})
		require.ErrorIs(t, err, gitflowerrors.ErrEmptyMessage)
	})
}

func TestRunNothingToCommit(t *testing.T) {
	runner := newFakeRunner()
	runner.staged = false
	ctx, _ := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{
		Message: "msg",
		Remote:  "origin",
	})
	require.ErrorIs(t, err, gitflowerrors.ErrNothingToCommit)

	var stepErr *workflow.StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, workflow.StateStaged, stepErr.Step)
}

func TestRunPushRejection(t *testing.T) {
	// Non-fast-forward rejection stops the run with no retry.
	runner := newFakeRunner()
	runner.staged = true
	runner.pushErr = fmt.Errorf("%w: remote has newer commits", gitflowerrors.ErrNonFastForward)
	ctx, out := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{
		Message: "msg",
		Remote:  "origin",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, gitflowerrors.ErrNonFastForward)

	var stepErr *workflow.StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, workflow.StatePushed, stepErr.Step)

	pushes := 0
	for _, call := range runner.calls {
		if call == "push main origin" {
			pushes++
		}
	}
	require.Equal(t, 1, pushes)
	require.NotContains(t, out.String(), "Gitflow complete")
}

func TestRunUnknownRemote(t *testing.T) {
	runner := newFakeRunner()
	runner.staged = true
	ctx, _ := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{Message: "msg", Remote: "upstream"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `remote "upstream" is not configured`)

	var stepErr *workflow.StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, workflow.StateFetched, stepErr.Step)
	require.Empty(t, runner.calls)
}

func TestRunFetchFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.fetchErr = fmt.Errorf("%w: could not resolve host", gitflowerrors.ErrNetworkFailure)
	ctx, _ := newTestContext(t, runner, nil)

	err := workflow.Run(ctx, workflow.Options{Message: "msg", Remote: "origin"})
	require.ErrorIs(t, err, gitflowerrors.ErrNetworkFailure)

	var stepErr *workflow.StepError
	require.True(t, errors.As(err, &stepErr))
	require.Equal(t, workflow.StateFetched, stepErr.Step)
	require.Equal(t, []string{"fetch origin"}, runner.calls)
}

func TestRunInteractiveBranchPrompt(t *testing.T) {
	t.Run("re-prompts until the name is valid", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		prompter := &fakePrompter{
			inputs: []string{"bad name", "release/1.0"},
		}
		ctx, out := newTestContext(t, runner, prompter)

		err := workflow.Run(ctx, workflow.Options{Message: "msg", Remote: "origin"})
		require.NoError(t, err)
		require.Contains(t, runner.calls, "checkout -b release/1.0")
		require.Contains(t, out.String(), "invalid branch name")
	})

	t.Run("assume-yes skips the prompt entirely", func(t *testing.T) {
		runner := newFakeRunner()
		runner.staged = true
		prompter := &fakePrompter{} // would fail if consulted
		ctx, _ := newTestContext(t, runner, prompter)

		err := workflow.Run(ctx, workflow.Options{Message: "msg", Remote: "origin", AssumeYes: true})
		require.NoError(t, err)
		require.Contains(t, runner.calls, "push main origin")
	})
}
