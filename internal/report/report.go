// Package report renders per-file coverage summaries as a fixed-width text
// table and writes it to a file or to the console.
//
// Each file contributes its identifier on one line followed by one
// tab-indented row per metric:
//
//	src/a.js
//		statements     10
//		branches       2
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/bethropolis/filecov/internal/coverage"
	"github.com/bethropolis/filecov/internal/fspath"
	"github.com/bethropolis/filecov/internal/layout"
	"github.com/bethropolis/filecov/internal/utils"
	"github.com/hack-pad/hackpadfs"
	hackpados "github.com/hack-pad/hackpadfs/os"
	"github.com/pkg/errors"
)

// Type is the name this report is selected by
const Type = "files"

// ErrAlreadyWritten is returned when a FilesReport is run a second time
var ErrAlreadyWritten = errors.New("report has already been written")

// Synopsis describes the report in one line
func Synopsis() string {
	return "files report that prints a coverage line for every file, typically to console"
}

// SummaryProvider returns the coverage summary of one tracked file
type SummaryProvider func(file string) (coverage.Summary, error)

// Done describes a finished report run. It is delivered exactly once per report.
type Done struct {
	// Destination is where the report was written
	Destination string
	// Files is the number of files in the report
	Files int
	// Bytes is the size of the written report, 0 on failure
	Bytes int
	// Err is the failure that ended the run, if any
	Err error
}

// Options configures a FilesReport
type Options struct {
	// Dir is the directory the report file is written to. Defaults to the working directory.
	// With the default FS it is an OS path; with a custom FS it is an FS path on that FS.
	Dir string
	// File is the report file name inside Dir. Empty writes to Console instead.
	File string
	// MaxCols is the metric label column width. 0 uses layout.DefaultLabelWidth.
	MaxCols int

	// FS receives file reports. Defaults to hackpadfs's os.NewFS().
	FS hackpadfs.FS
	// Console receives console reports. Defaults to os.Stdout.
	Console io.Writer
	// Summarizer reduces raw file coverage to metrics. Defaults to coverage.Summarize.
	Summarizer func(*coverage.FileCoverage) coverage.Summary
	// Logger receives diagnostics
	Logger utils.Logger
	// OnDone is called once the report has been written or has failed
	OnDone func(Done)
}

// FilesReport renders and writes one files report. It is not reusable.
type FilesReport struct {
	opts    Options
	sink    Sink
	log     utils.Logger
	written atomic.Bool
}

// New validates opts, fills in defaults and selects the sink
func New(opts Options) (*FilesReport, error) {
	if opts.MaxCols < 0 {
		return nil, errors.Errorf("max columns must not be negative: %d", opts.MaxCols)
	}
	if opts.Summarizer == nil {
		opts.Summarizer = coverage.Summarize
	}
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	log := utils.OrNoop(opts.Logger)

	var sink Sink
	if opts.File == "" {
		sink = NewConsoleSink(opts.Console, "stdout")
	} else {
		dir, err := resolveDir(&opts)
		if err != nil {
			return nil, err
		}
		sink = NewFileSink(opts.FS, dir, opts.File)
	}
	return &FilesReport{
		opts: opts,
		sink: sink,
		log:  log,
	}, nil
}

func resolveDir(opts *Options) (string, error) {
	if opts.FS != nil {
		if opts.Dir == "" {
			opts.Dir = "."
		}
		if !hackpadfs.ValidPath(opts.Dir) {
			return "", errors.Errorf("invalid report directory FS path: %s", opts.Dir)
		}
		return opts.Dir, nil
	}
	opts.FS = hackpados.NewFS()
	if opts.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "report directory")
		}
		opts.Dir = wd
	}
	return fspath.Abs(opts.Dir)
}

// Sink returns the destination selected for this report
func (r *FilesReport) Sink() Sink {
	return r.sink
}

// LabelWidth returns the metric label column width
func (r *FilesReport) LabelWidth() int {
	return layout.LabelWidth(r.opts.MaxCols)
}

// Render formats files in order. Each file's metrics keep their summary order.
// The result always ends with exactly one newline, so no files renders as "\n".
// A file whose summary has no metrics contributes only its identifier line;
// istanbul's files report emits an empty row after it, which is dropped here.
func (r *FilesReport) Render(files []string, summaryFor SummaryProvider) (string, error) {
	width := r.LabelWidth()
	var lines []string
	for _, file := range files {
		summary, err := summaryFor(file)
		if err != nil {
			return "", errors.Wrapf(err, "summarize %q", file)
		}
		lines = append(lines, file)
		for _, metric := range summary {
			lines = append(lines, "\t"+layout.Fit(metric.Name, width, false)+fmt.Sprint(metric.Covered))
		}
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// SummaryFor adapts a collector and the configured summarizer into a SummaryProvider
func (r *FilesReport) SummaryFor(c coverage.Collector) SummaryProvider {
	return func(file string) (coverage.Summary, error) {
		fc, err := c.FileCoverageFor(file)
		if err != nil {
			return nil, err
		}
		return r.opts.Summarizer(fc), nil
	}
}

// WriteReport renders every file tracked by c and writes the text to the sink.
// OnDone is signalled after the write attempt, whether it succeeded or not.
func (r *FilesReport) WriteReport(c coverage.Collector) error {
	if !r.written.CompareAndSwap(false, true) {
		return ErrAlreadyWritten
	}
	files := c.Files()
	r.log.Debug("report: rendering %d files with label width %d", len(files), r.LabelWidth())

	done := Done{
		Destination: r.sink.Destination(),
		Files:       len(files),
	}
	text, err := r.Render(files, r.SummaryFor(c))
	if err == nil {
		err = r.sink.Write(text)
	}
	if err != nil {
		done.Err = errors.Wrap(err, "files report")
		r.log.Debug("report: failed writing to %s: %v", done.Destination, err)
	} else {
		done.Bytes = len(text)
		r.log.Debug("report: wrote %d bytes to %s", done.Bytes, done.Destination)
	}
	if r.opts.OnDone != nil {
		r.opts.OnDone(done)
	}
	return done.Err
}
