package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore reports whether the tracked file identifier is excluded.
// A file inside an excluded directory stays excluded, as in git.
func (m *IgnoreMatcher) ShouldIgnore(identifier string) bool {
	if m == nil || m.disabled || m.patterns == nil {
		return false
	}
	rel := m.relative(identifier)
	if rel == "" || rel == "." {
		return false
	}

	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		dir := strings.Join(parts[:i], "/")
		if m.ignored(dir, true) {
			m.logger.Debug("ignore.ShouldIgnore: %q excluded by directory %q", identifier, dir)
			return true
		}
	}
	if m.ignored(rel, false) {
		m.logger.Debug("ignore.ShouldIgnore: %q excluded", identifier)
		return true
	}
	return false
}

// Keep is the inverse of ShouldIgnore, shaped for collector filters
func (m *IgnoreMatcher) Keep(identifier string) bool {
	return !m.ShouldIgnore(identifier)
}

func (m *IgnoreMatcher) ignored(rel string, isDir bool) bool {
	match := m.patterns.Relative(filepath.FromSlash(rel), isDir)
	return match != nil && match.Ignore()
}

// relative returns a slash separated identifier, relative to the root when it lies under it
func (m *IgnoreMatcher) relative(identifier string) string {
	if filepath.IsAbs(identifier) {
		if rel, err := filepath.Rel(m.root, identifier); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.ToSlash(rel)
		}
	}
	return strings.TrimPrefix(filepath.ToSlash(identifier), "/")
}
