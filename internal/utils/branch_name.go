package utils

import (
	"fmt"
	"strings"

	gitflowerrors "gitflow.dev/gitflow/internal/errors"
)

const (
	// MaxBranchNameByteLength is the maximum length for a branch name.
	// Git refs have a max length of 256 bytes, minus 11 for "refs/heads/".
	MaxBranchNameByteLength = 245
)

// forbiddenChars are the characters git-check-ref-format rejects outright.
var forbiddenChars = "~^:?*[\\"

// ValidateBranchName checks a branch name against git's ref naming rules.
// It returns nil for a usable name and an *errors.InvalidBranchNameError
// describing the broken rule otherwise.
func ValidateBranchName(name string) error {
	reject := func(reason string) error {
		return gitflowerrors.NewInvalidBranchNameError(name, reason)
	}

	if name == "" {
		return reject("name is empty")
	}
	if len(name) > MaxBranchNameByteLength {
		return reject(fmt.Sprintf("name exceeds %d bytes", MaxBranchNameByteLength))
	}
	if name == "@" {
		return reject("'@' is reserved")
	}
	if strings.HasPrefix(name, "-") {
		return reject("must not start with '-'")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return reject("must not start or end with '/'")
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return reject("must not start or end with '.'")
	}
	if strings.HasSuffix(name, ".lock") {
		return reject("must not end with '.lock'")
	}
	if strings.Contains(name, "..") {
		return reject("must not contain '..'")
	}
	if strings.Contains(name, "//") {
		return reject("must not contain '//'")
	}
	if strings.Contains(name, "@{") {
		return reject("must not contain '@{'")
	}
	for _, r := range name {
		switch {
		case r == ' ' || r == '\t':
			return reject("must not contain whitespace")
		case r < 0x20 || r == 0x7f:
			return reject("must not contain control characters")
		case strings.ContainsRune(forbiddenChars, r):
			return reject(fmt.Sprintf("must not contain '%c'", r))
		}
	}
	// Slash-separated components follow the same leading-dot/.lock rules.
	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") {
			return reject("path component must not start with '.'")
		}
		if strings.HasSuffix(component, ".lock") {
			return reject("path component must not end with '.lock'")
		}
	}
	return nil
}
