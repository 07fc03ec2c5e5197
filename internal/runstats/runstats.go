// Package runstats handles display of report run results and statistics
package runstats

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Stats summarizes one report run
type Stats struct {
	Inputs      int
	Files       int
	Excluded    int
	Bytes       int
	Destination string
	Duration    time.Duration
}

// DisplayResults shows the end results of a report run
func DisplayResults(logger Logger, stats Stats, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Loaded %s files from %s inputs (%s excluded).",
		humanize.Comma(int64(stats.Files+stats.Excluded)),
		humanize.Comma(int64(stats.Inputs)),
		humanize.Comma(int64(stats.Excluded)))
	logger.Info("Wrote %s report for %s files to %s in %v.",
		humanize.Bytes(uint64(stats.Bytes)),
		humanize.Comma(int64(stats.Files)),
		stats.Destination,
		stats.Duration.Round(time.Millisecond))
}

// DisplayExcluded lists the tracked files left out of the report
func DisplayExcluded(logger Logger, excluded []string, quiet bool) {
	if quiet {
		return
	}
	logger.Info("--- Excluded Files (%d) ---", len(excluded))
	if len(excluded) == 0 {
		logger.Info("No files were excluded.")
	} else {
		sorted := append([]string(nil), excluded...)
		sort.Strings(sorted)
		for _, file := range sorted {
			logger.Info("Excluded: %s", file)
		}
	}
	logger.Info("--- End Excluded Files ---")
}
