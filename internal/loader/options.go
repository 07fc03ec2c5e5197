package loader

import (
	"context"

	"github.com/bethropolis/filecov/internal/utils"
	"github.com/hack-pad/hackpadfs"
	hackpados "github.com/hack-pad/hackpadfs/os"
)

// LoadOptions configures the behavior of a Loader
type LoadOptions struct {
	FS         hackpadfs.FS
	Logger     utils.Logger
	MaxWorkers int
	Context    context.Context
}

// defaultOptions returns the default load options
func defaultOptions() LoadOptions {
	return LoadOptions{
		Logger:     utils.NoopLogger{},
		MaxWorkers: 4,
		Context:    context.Background(),
	}
}

// Option is a functional option for configuring LoadOptions
type Option func(*LoadOptions)

// WithFS sets the filesystem inputs are read from. Paths are FS paths on it.
func WithFS(fs hackpadfs.FS) Option {
	return func(opts *LoadOptions) {
		opts.FS = fs
	}
}

// WithLogger sets a custom logger for the loader
func WithLogger(logger utils.Logger) Option {
	return func(opts *LoadOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithMaxWorkers sets the maximum number of inputs parsed at once
func WithMaxWorkers(workers int) Option {
	return func(opts *LoadOptions) {
		if workers > 0 {
			opts.MaxWorkers = workers
		}
	}
}

// WithContext sets the context for cancellation
func WithContext(ctx context.Context) Option {
	return func(opts *LoadOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

func (o *LoadOptions) fs() hackpadfs.FS {
	if o.FS == nil {
		o.FS = hackpados.NewFS()
	}
	return o.FS
}
