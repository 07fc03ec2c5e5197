// Package ignore excludes tracked coverage files by gitignore-style patterns.
//
// Patterns follow .gitignore syntax: "test/" drops a directory, "*.spec.js"
// drops by name anywhere, "/vendor" anchors at the root, and "!keep.js"
// re-includes a file an earlier pattern dropped.
package ignore

import (
	"github.com/bethropolis/filecov/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreMatcher determines whether a tracked file should be left out of the report
type IgnoreMatcher struct {
	// compiled exclude patterns, nil when there are none
	patterns gitignore.GitIgnore

	root     string
	rules    []string
	logger   utils.Logger
	disabled bool
}

// Config holds configuration options for the ignore matcher
type Config struct {
	Root     string
	Patterns []string
	Logger   utils.Logger
	Disabled bool
}
