package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bethropolis/filecov/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	flags := pflag.NewFlagSet("filecov", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse(args))
	return Resolve(flags, flags.Args())
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filecov.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestResolveFlags(t *testing.T) {
	t.Parallel()
	cfg, err := parse(t,
		"--dir", "out", "-f", "files.txt", "--max-cols", "20",
		"-e", "test/", "--exclude", "*.spec.js",
		"--workers", "2", "--timeout", "5s", "--no-color", "-v",
		"coverage/coverage-final.json", "cover.out",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"coverage/coverage-final.json", "cover.out"}, cfg.Inputs)
	assert.Equal(t, "out", cfg.Dir)
	assert.Equal(t, "files.txt", cfg.File)
	assert.Equal(t, 20, cfg.MaxCols)
	assert.Equal(t, []string{"test/", "*.spec.js"}, cfg.Exclude)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, logger.LevelDebug, cfg.Level())
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := parse(t, "cover.out")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxCols)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestResolveConfigFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
dir: reports
file: coverage.txt
maxCols: 18
exclude:
  - vendor/
inputs:
  - coverage/coverage-final.json
logLevel: warn
workers: 3
`)
	cfg, err := parse(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "reports", cfg.Dir)
	assert.Equal(t, "coverage.txt", cfg.File)
	assert.Equal(t, 18, cfg.MaxCols)
	assert.Equal(t, []string{"vendor/"}, cfg.Exclude)
	assert.Equal(t, []string{"coverage/coverage-final.json"}, cfg.Inputs)
	assert.Equal(t, logger.LevelWarn, cfg.Level())
	assert.Equal(t, 3, cfg.Workers)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
file: coverage.txt
maxCols: 18
exclude: [vendor/]
inputs: [from-file.json]
`)
	cfg, err := parse(t, "-c", path, "--max-cols", "0", "--file", "other.txt", "-e", "test/", "cli.out")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxCols)
	assert.Equal(t, "other.txt", cfg.File)
	assert.Equal(t, []string{"vendor/", "test/"}, cfg.Exclude)
	assert.Equal(t, []string{"cli.out"}, cfg.Inputs)
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		args        []string
		expectErr   string
	}{
		{
			description: "no inputs",
			args:        nil,
			expectErr:   ErrNoInputs.Error(),
		},
		{
			description: "negative max columns",
			args:        []string{"--max-cols", "-1", "cover.out"},
			expectErr:   "max columns must not be negative: -1",
		},
		{
			description: "zero workers",
			args:        []string{"--workers", "0", "cover.out"},
			expectErr:   "workers must be at least 1: 0",
		},
		{
			description: "negative timeout",
			args:        []string{"--timeout", "-1s", "cover.out"},
			expectErr:   "timeout must not be negative: -1s",
		},
		{
			description: "missing explicit config",
			args:        []string{"--config", "/does/not/exist.yaml", "cover.out"},
			expectErr:   "/does/not/exist.yaml: configuration file not found",
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			_, err := parse(t, tc.args...)
			assert.EqualError(t, err, tc.expectErr)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Parallel()
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrConfigNotFound))

	_, err = LoadConfigFile(writeConfig(t, "maxCols: [not, a, number]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, logger.LevelInfo, (&Config{}).Level())
	assert.Equal(t, logger.LevelWarn, (&Config{Quiet: true}).Level())
	assert.Equal(t, logger.LevelDebug, (&Config{Verbose: true, Quiet: true}).Level())
	assert.Equal(t, logger.LevelError, (&Config{Verbose: true, LogLevel: "error"}).Level())
}

func TestResolveNoExclude(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "exclude:\n  - vendor/\n")
	cfg, err := parse(t, "--config", path, "--no-exclude", "cover.out")
	require.NoError(t, err)
	assert.True(t, cfg.NoExclude)
	assert.Equal(t, []string{"vendor/"}, cfg.Exclude)
}
