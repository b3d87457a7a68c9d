// Package shared provides common utility functions used across multiple
// packages in the mediad codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizeProjectName lowercases a package project name and replaces
// underscores and dots with hyphens, following PEP 503 normalization.
func NormalizeProjectName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", ".", "-")
	return replacer.Replace(lower)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
