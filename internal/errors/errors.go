// Package errors provides sentinel errors and custom error types for the gitflow application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds the workflow can report.
var (
	// ErrNetworkFailure indicates that git could not reach the remote
	ErrNetworkFailure = errors.New("network failure")

	// ErrAuthFailure indicates that the remote rejected our credentials
	ErrAuthFailure = errors.New("authentication failure")

	// ErrMergeConflict indicates that a pull or stash restore hit conflicting changes
	ErrMergeConflict = errors.New("merge conflict")

	// ErrNonFastForward indicates that a push was rejected because the remote has newer commits
	ErrNonFastForward = errors.New("non-fast-forward rejection")

	// ErrInvalidBranchName indicates that a branch name failed validation
	ErrInvalidBranchName = errors.New("invalid branch name")

	// ErrEmptyMessage indicates that no commit message was supplied or confirmed
	ErrEmptyMessage = errors.New("empty or unconfirmed commit message")

	// ErrNothingToCommit indicates that staging produced no changes to commit
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// InvalidBranchNameError reports a rejected branch name together with the rule it broke.
type InvalidBranchNameError struct {
	BranchName string
	Reason     string
}

func (e *InvalidBranchNameError) Error() string {
	return fmt.Sprintf("invalid branch name %q: %s", e.BranchName, e.Reason)
}

// Is returns true if the target error is ErrInvalidBranchName
func (e *InvalidBranchNameError) Is(target error) bool {
	return target == ErrInvalidBranchName
}

// NewInvalidBranchNameError creates a new InvalidBranchNameError
func NewInvalidBranchNameError(branchName, reason string) *InvalidBranchNameError {
	return &InvalidBranchNameError{BranchName: branchName, Reason: reason}
}

// StashRestoreError reports a stash that could not be restored after a pull.
// The stash is left in place; losing local edits silently is never acceptable.
type StashRestoreError struct {
	StashRef string
	Err      error
}

func (e *StashRestoreError) Error() string {
	ref := e.StashRef
	if ref == "" {
		ref = "stash@{0}"
	}
	return fmt.Sprintf("could not restore stashed changes (%s): your edits are preserved in the stash, resolve with 'git stash pop'", ref)
}

// Is returns true if the target error is ErrMergeConflict
func (e *StashRestoreError) Is(target error) bool {
	return target == ErrMergeConflict
}

func (e *StashRestoreError) Unwrap() error {
	return e.Err
}

// NewStashRestoreError creates a new StashRestoreError
func NewStashRestoreError(stashRef string, err error) *StashRestoreError {
	return &StashRestoreError{StashRef: stashRef, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Output returns the combined stderr and stdout of the failed command,
// which is where git reports the cause of rejections and conflicts.
func (e *GitCommandError) Output() string {
	return strings.TrimSpace(e.Stderr + "\n" + e.Stdout)
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
