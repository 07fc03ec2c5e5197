package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/bethropolis/filecov/internal/config"
	"github.com/bethropolis/filecov/internal/fspath"
	"github.com/bethropolis/filecov/internal/logger"
	"github.com/bethropolis/filecov/internal/report"
	"github.com/bethropolis/filecov/internal/runstats"
	"github.com/bethropolis/filecov/internal/setup"
	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	fs     hackpadfs.FS
}

// New creates a new App writing reports to stdout and diagnostics to stderr
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	return &App{
		cfg:    cfg,
		log:    logger.New(stderr, cfg.Level(), cfg.UseColors),
		stdout: stdout,
	}
}

// WithFS runs the app against fs instead of the host filesystem.
// Inputs and the report directory are then FS paths on fs.
func (a *App) WithFS(fs hackpadfs.FS) *App {
	a.fs = fs
	return a
}

// Run loads the coverage inputs and writes the files report
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()
	quiet := a.log.Level() > logger.LevelInfo

	a.log.Debug("Color output: %v", a.cfg.UseColors)
	if a.cfg.ConfigFile != "" {
		a.log.Debug("Config file: %s", a.cfg.ConfigFile)
	}
	a.log.Debug("Inputs: %v", a.cfg.Inputs)
	a.log.Debug("Report %s: dir=%q file=%q max-cols=%d", report.Type, a.cfg.Dir, a.cfg.File, a.cfg.MaxCols)

	loadCtx := ctx
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	root, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "working directory")
	}
	matcher, ld, inputs, err := setup.ConfigureLoader(setup.LoaderConfig{
		Root:       root,
		Inputs:     a.cfg.Inputs,
		Exclude:    a.cfg.Exclude,
		MaxWorkers: a.cfg.Workers,
		Context:    loadCtx,
		FS:         a.fs,
		Logger:     a.log,

		DisableExclude: a.cfg.NoExclude,
	}, a.log.Info)
	if err != nil {
		return err
	}

	a.log.Info("Loading %d coverage inputs.", len(inputs))
	collector, err := ld.Load(inputs)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.Errorf("timeout of %v reached while loading coverage", a.cfg.Timeout)
		}
		return err
	}

	var excluded []string
	tracked := collector.Filter(func(file string) bool {
		if matcher.Keep(file) {
			return true
		}
		excluded = append(excluded, file)
		return false
	})
	if a.cfg.ShowExcluded {
		runstats.DisplayExcluded(a.log, excluded, quiet)
	}

	var done report.Done
	files, err := report.New(report.Options{
		Dir:     a.cfg.Dir,
		File:    a.cfg.File,
		MaxCols: a.cfg.MaxCols,
		FS:      a.fs,
		Console: a.stdout,
		Logger:  a.log,
		OnDone:  func(d report.Done) { done = d },
	})
	if err != nil {
		return err
	}
	if err := files.WriteReport(tracked); err != nil {
		return err
	}

	destination := done.Destination
	if a.fs == nil && a.cfg.File != "" {
		destination = fspath.FromFSPath(destination)
	}
	runstats.DisplayResults(a.log, runstats.Stats{
		Inputs:      len(inputs),
		Files:       done.Files,
		Excluded:    len(excluded),
		Bytes:       done.Bytes,
		Destination: destination,
		Duration:    time.Since(startTime),
	}, quiet)
	return nil
}
