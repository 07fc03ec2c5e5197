package coverage

import (
	"github.com/pkg/errors"
)

// ErrUnknownFile is returned when coverage is requested for a file the collector does not track
var ErrUnknownFile = errors.New("file is not tracked by the collector")

// Collector enumerates tracked files and supplies their raw coverage
type Collector interface {
	// Files returns tracked file identifiers in a stable order
	Files() []string
	// FileCoverageFor returns the raw coverage recorded for file
	FileCoverageFor(file string) (*FileCoverage, error)
}

// MemoryCollector is an in-memory Collector that merges coverage for repeated files.
// Files are reported in the order they were first added.
type MemoryCollector struct {
	order []string
	files map[string]*FileCoverage
}

var _ Collector = (*MemoryCollector)(nil)

// NewCollector creates an empty MemoryCollector
func NewCollector() *MemoryCollector {
	return &MemoryCollector{
		files: make(map[string]*FileCoverage),
	}
}

// Add records fc. Coverage for an already tracked path is merged into the existing entry.
func (c *MemoryCollector) Add(fc *FileCoverage) {
	if fc == nil {
		return
	}
	if existing, ok := c.files[fc.Path]; ok {
		existing.Merge(fc)
		return
	}
	c.order = append(c.order, fc.Path)
	c.files[fc.Path] = fc.Clone()
}

// Files returns tracked file identifiers in insertion order
func (c *MemoryCollector) Files() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of tracked files
func (c *MemoryCollector) Len() int {
	return len(c.order)
}

// FileCoverageFor returns the merged coverage for file
func (c *MemoryCollector) FileCoverageFor(file string) (*FileCoverage, error) {
	fc, ok := c.files[file]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFile, "coverage for %q", file)
	}
	return fc, nil
}

// Filter returns a collector tracking only the files keep accepts.
// Coverage entries are shared with c.
func (c *MemoryCollector) Filter(keep func(file string) bool) *MemoryCollector {
	out := NewCollector()
	for _, file := range c.order {
		if keep(file) {
			out.order = append(out.order, file)
			out.files[file] = c.files[file]
		}
	}
	return out
}
