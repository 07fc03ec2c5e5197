package ignore

import "github.com/bethropolis/filecov/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithPatterns adds exclude patterns. Blank entries and comments are skipped.
func WithPatterns(patterns []string) Option {
	return func(m *IgnoreMatcher) {
		m.rules = append(m.rules, patterns...)
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.disabled = disabled
	}
}
