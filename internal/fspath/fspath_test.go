package fspath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFSPath(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("unix path fixtures")
	}
	for _, tc := range []struct {
		description string
		path        string
		expect      string
	}{
		{description: "root", path: "/", expect: "."},
		{description: "absolute", path: "/home/me/coverage", expect: "home/me/coverage"},
		{description: "unclean", path: "/home/me/../you/./reports/", expect: "home/you/reports"},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, ToFSPath(tc.path))
		})
	}
}

func TestFromFSPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.FromSlash("/home/me"), FromFSPath("home/me"))
	assert.Equal(t, filepath.FromSlash("/"), FromFSPath("."))
}

func TestAbs(t *testing.T) {
	t.Parallel()
	wd, err := os.Getwd()
	require.NoError(t, err)
	p, err := Abs("reports")
	require.NoError(t, err)
	assert.Equal(t, ToFSPath(filepath.Join(wd, "reports")), p)
}
