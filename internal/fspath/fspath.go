// Package fspath converts between OS paths and hackpadfs FS paths.
// FS paths are slash separated, relative to the FS root, and never start with a slash.
package fspath

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ToFSPath converts an absolute OS path to an FS path rooted at "/"
func ToFSPath(p string) string {
	p = filepath.ToSlash(p)
	if vol := filepath.VolumeName(p); vol != "" {
		p = strings.TrimPrefix(p, vol)
	}
	p = strings.TrimPrefix(path.Clean(p), "/")
	if p == "" {
		return "."
	}
	return p
}

// FromFSPath converts an FS path back to an absolute OS path
func FromFSPath(p string) string {
	return filepath.FromSlash(path.Join("/", p))
}

// Abs resolves an OS path against the working directory and returns its FS path
func Abs(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolve path %q", p)
	}
	return ToFSPath(abs), nil
}
