package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bethropolis/filecov/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/pkg/errors"
)

// New creates an IgnoreMatcher. Absolute file identifiers under root are matched relative to it.
func New(root string, opts ...Option) (*IgnoreMatcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "ignore: failed to get absolute path for root %q", root)
	}

	matcher := &IgnoreMatcher{
		root:   absRoot,
		logger: utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(matcher)
	}
	matcher.init()
	return matcher, nil
}

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	return New(cfg.Root,
		WithPatterns(cfg.Patterns),
		WithLogger(cfg.Logger),
		WithDisabled(cfg.Disabled),
	)
}

// init compiles the exclude patterns
func (m *IgnoreMatcher) init() {
	var rules []string
	for _, rule := range m.rules {
		rule = strings.TrimSpace(rule)
		if rule == "" || strings.HasPrefix(rule, "#") {
			continue
		}
		rules = append(rules, rule)
	}
	m.rules = rules

	if m.disabled || len(rules) == 0 {
		m.logger.Debug("ignore.New: no exclude patterns active for root %s", m.root)
		return
	}
	m.logger.Debug("ignore.New: compiling %d exclude patterns for root %s", len(rules), m.root)
	m.patterns = gitignore.New(strings.NewReader(strings.Join(rules, "\n")), m.root, func(e gitignore.Error) bool {
		m.logger.Warn("ignore: skipping invalid exclude pattern: %v", e)
		return true
	})
}

// Patterns returns the active exclude patterns
func (m *IgnoreMatcher) Patterns() []string {
	if m == nil || m.disabled {
		return nil
	}
	return append([]string(nil), m.rules...)
}
