package git

import (
	"context"
)

// Runner defines the interface for the git operations the workflow uses.
// This allows the workflow to be used with both real git and mock implementations.
type Runner interface {
	// Remote operations
	RemoteExists(name string) (bool, error)
	Fetch(ctx context.Context, remote string) error
	Pull(ctx context.Context, remote string) (PullResult, error)
	Push(ctx context.Context, branchName, remote string) error

	// Branch management
	CurrentBranch() (string, error)
	BranchExists(branchName string) (bool, error)
	CheckoutBranch(ctx context.Context, branchName string) error
	CreateAndCheckoutBranch(ctx context.Context, branchName string) error

	// Working tree state
	HasLocalChanges(ctx context.Context) (bool, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	StageAll(ctx context.Context) error
	StashPush(ctx context.Context, message string) (string, error)
	StashPop(ctx context.Context) error

	// Commit creation
	Commit(ctx context.Context, message string) error
}

// NewRealRunner returns a standard implementation of Runner backed by the
// git binary for mutations and the go-git repository handle for lookups.
func NewRealRunner(repo *Repository) Runner {
	return &realRunner{repo: repo}
}

// realRunner implements Runner by calling the package-level git functions
type realRunner struct {
	repo *Repository
}

func (r *realRunner) RemoteExists(name string) (bool, error) {
	return r.repo.RemoteExists(name)
}

func (r *realRunner) Fetch(ctx context.Context, remote string) error {
	return Fetch(ctx, remote)
}

func (r *realRunner) Pull(ctx context.Context, remote string) (PullResult, error) {
	return PullCurrentBranch(ctx, remote)
}

func (r *realRunner) Push(ctx context.Context, branchName, remote string) error {
	return PushBranch(ctx, branchName, remote)
}

func (r *realRunner) CurrentBranch() (string, error) {
	return r.repo.CurrentBranch()
}

func (r *realRunner) BranchExists(branchName string) (bool, error) {
	return r.repo.BranchExists(branchName)
}

func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	return CheckoutBranch(ctx, branchName)
}

func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	return CreateAndCheckoutBranch(ctx, branchName)
}

func (r *realRunner) HasLocalChanges(ctx context.Context) (bool, error) {
	return HasLocalChanges(ctx)
}

func (r *realRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	return HasStagedChanges(ctx)
}

func (r *realRunner) StageAll(ctx context.Context) error {
	return StageAll(ctx)
}

func (r *realRunner) StashPush(ctx context.Context, message string) (string, error) {
	return StashPush(ctx, message)
}

func (r *realRunner) StashPop(ctx context.Context) error {
	return StashPop(ctx)
}

func (r *realRunner) Commit(ctx context.Context, message string) error {
	return Commit(ctx, message)
}
