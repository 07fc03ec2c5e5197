package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up in the working directory
const DefaultConfigFile = ".filecov.yaml"

// xdgConfigFile is the configuration file looked up in the XDG config directories
const xdgConfigFile = "filecov/config.yaml"

// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file layout
type File struct {
	Dir      string   `yaml:"dir"`
	File     string   `yaml:"file"`
	MaxCols  *int     `yaml:"maxCols"`
	Exclude  []string `yaml:"exclude"`
	Inputs   []string `yaml:"inputs"`
	LogLevel string   `yaml:"logLevel"`
	Workers  int      `yaml:"workers"`
}

// LoadConfigFile reads a YAML configuration file
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrConfigNotFound, path)
		}
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	return &f, nil
}

// FindConfigFile returns the configuration file to load, searching in order:
//  1. configPath, which must exist when given
//  2. .filecov.yaml in the working directory
//  3. filecov/config.yaml in the XDG config directories
//
// An empty result means no configuration file is in use.
func FindConfigFile(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(ErrConfigNotFound, configPath)
			}
			return "", errors.Wrapf(err, "stat config %q", configPath)
		}
		return configPath, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if found, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return found, nil
	}
	return "", nil
}

// apply copies the values set in the file onto cfg
func (f *File) apply(cfg *Config) {
	if f.Dir != "" {
		cfg.Dir = f.Dir
	}
	if f.File != "" {
		cfg.File = f.File
	}
	if f.MaxCols != nil {
		cfg.MaxCols = *f.MaxCols
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.Workers != 0 {
		cfg.Workers = f.Workers
	}
	cfg.Exclude = append(cfg.Exclude, f.Exclude...)
	cfg.Inputs = append(cfg.Inputs, f.Inputs...)
}
