// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Remote operations (fetch, pull, push)
//   - Branch management (lookup, checkout, create)
//   - Working tree state (status, staging, stash)
//   - Commit creation
//
// This package should be the only place where direct git commands are executed.
package git
