// Package setup provides initialization and configuration functions
package setup

import (
	"context"

	"github.com/bethropolis/filecov/internal/fspath"
	"github.com/bethropolis/filecov/internal/ignore"
	"github.com/bethropolis/filecov/internal/loader"
	"github.com/bethropolis/filecov/internal/utils"
	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// LoaderConfig holds all parameters needed to configure coverage loading
type LoaderConfig struct {
	// Root is the OS directory exclude patterns are anchored to
	Root       string
	Inputs     []string
	Exclude    []string
	MaxWorkers int
	Context    context.Context
	// FS reads inputs. When nil, inputs are OS paths read through the host filesystem.
	FS     hackpadfs.FS
	Logger utils.Logger

	// DisableExclude keeps every tracked file regardless of Exclude
	DisableExclude bool
}

// ConfigureLoader sets up an exclude matcher, a loader and the FS paths of its inputs
func ConfigureLoader(cfg LoaderConfig, infoLog InfoLogger) (*ignore.IgnoreMatcher, *loader.Loader, []string, error) {
	matcher, err := ignore.NewFromConfig(ignore.Config{
		Root:     cfg.Root,
		Patterns: cfg.Exclude,
		Logger:   cfg.Logger,
		Disabled: cfg.DisableExclude,
	})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "error initializing exclude rules")
	}
	if patterns := matcher.Patterns(); len(patterns) > 0 {
		infoLog("Excluding files matching: %v", patterns)
	}

	inputs := cfg.Inputs
	if cfg.FS == nil {
		inputs = make([]string, 0, len(cfg.Inputs))
		for _, input := range cfg.Inputs {
			p, err := fspath.Abs(input)
			if err != nil {
				return nil, nil, nil, err
			}
			inputs = append(inputs, p)
		}
	}

	opts := []loader.Option{
		loader.WithLogger(cfg.Logger),
		loader.WithMaxWorkers(cfg.MaxWorkers),
		loader.WithContext(cfg.Context),
	}
	if cfg.FS != nil {
		opts = append(opts, loader.WithFS(cfg.FS))
	}
	return matcher, loader.New(opts...), inputs, nil
}
