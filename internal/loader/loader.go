// Package loader reads coverage files into a collector.
//
// Two input formats are understood: istanbul coverage-final.json objects and
// Go cover profiles. Inputs are parsed concurrently but always added to the
// collector in the order they were given, so file order is deterministic.
package loader

import (
	"bytes"
	"path"
	"strings"

	"github.com/bethropolis/filecov/internal/coverage"
	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Format identifies a coverage input format
type Format string

// Supported formats
const (
	FormatIstanbul  Format = "istanbul"
	FormatGoProfile Format = "go"
)

// Loader reads coverage inputs
type Loader struct {
	opts LoadOptions
}

// New creates a Loader with the given options
func New(opts ...Option) *Loader {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.fs()
	return &Loader{opts: options}
}

// Load parses every input and returns a collector tracking their files.
// The first failure cancels the remaining inputs.
func (l *Loader) Load(paths []string) (*coverage.MemoryCollector, error) {
	results := make([][]*coverage.FileCoverage, len(paths))
	g, ctx := errgroup.WithContext(l.opts.Context)
	g.SetLimit(l.opts.MaxWorkers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := l.LoadFile(p)
			if err != nil {
				return err
			}
			results[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	collector := coverage.NewCollector()
	for _, files := range results {
		for _, fc := range files {
			collector.Add(fc)
		}
	}
	l.opts.Logger.Debug("loader: %d inputs produced %d tracked files", len(paths), collector.Len())
	return collector, nil
}

// LoadFile parses a single input, detecting its format
func (l *Loader) LoadFile(p string) ([]*coverage.FileCoverage, error) {
	data, err := hackpadfs.ReadFile(l.opts.FS, p)
	if err != nil {
		return nil, errors.Wrapf(err, "read coverage %q", p)
	}
	format := DetectFormat(p, data)
	l.opts.Logger.Debug("loader: parsing %s as %s coverage", p, format)

	var files []*coverage.FileCoverage
	switch format {
	case FormatIstanbul:
		files, err = ParseIstanbul(bytes.NewReader(data))
	default:
		files, err = ParseGoProfile(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s coverage %q", format, p)
	}
	return files, nil
}

// DetectFormat picks the input format from the file extension, then the contents
func DetectFormat(p string, data []byte) Format {
	if strings.EqualFold(path.Ext(p), ".json") {
		return FormatIstanbul
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatIstanbul
	}
	return FormatGoProfile
}
