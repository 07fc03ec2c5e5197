package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/filecov/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	osErr = bytes.NewBuffer(nil)
	osExiter = func(code int) {
		buf := osErr.(*bytes.Buffer)
		bytes, _ := io.ReadAll(buf)
		err := errors.New(string(bytes))
		panic(errors.Wrapf(err, "exited with code %d and output", code))
	}
}

func TestMainExits(t *testing.T) {
	handlePanic(t, main, func(v interface{}) {
		require.Implements(t, (*error)(nil), v)
		err := v.(error)
		assert.ErrorContains(t, err, "exited with code 1")
	})
}

func handlePanic(t *testing.T, fn func(), handler func(v interface{})) {
	t.Helper()
	defer func() {
		handler(recover())
	}()
	fn()
}

const goProfile = `mode: set
example.com/pkg/a.go:3.20,5.2 2 1
example.com/pkg/a.go:7.20,9.2 1 0
example.com/pkg/b.go:3.20,4.2 1 1
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o600))
	return p
}

func emptyConfig(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "filecov.yaml", "logLevel: none\n")
}

func TestRootCmd(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description  string
		args         func(dir string) []string
		expectStdout string
		expectFile   string
		expectErr    string
	}{
		{
			description: "no inputs",
			args:        func(string) []string { return nil },
			expectErr:   config.ErrNoInputs.Error(),
		},
		{
			description: "negative max cols",
			args:        func(dir string) []string { return []string{"--max-cols=-1", filepath.Join(dir, "cover.out")} },
			expectErr:   "max columns must not be negative: -1",
		},
		{
			description: "stdout",
			args:        func(dir string) []string { return []string{filepath.Join(dir, "cover.out")} },
			expectStdout: "example.com/pkg/a.go\n" +
				"\tlines          3\n" +
				"\tstatements     2\n" +
				"\tfunctions      0\n" +
				"\tbranches       0\n" +
				"example.com/pkg/b.go\n" +
				"\tlines          2\n" +
				"\tstatements     1\n" +
				"\tfunctions      0\n" +
				"\tbranches       0\n",
		},
		{
			description: "file with exclude and narrow labels",
			args: func(dir string) []string {
				return []string{
					"-d", filepath.Join(dir, "out"), "-f", "files.txt",
					"--max-cols", "9", "-e", "b.go",
					filepath.Join(dir, "cover.out"),
				}
			},
			expectFile: "example.com/pkg/a.go\n" +
				"\tlines    3\n" +
				"\t... ments2\n" +
				"\tfunctions0\n" +
				"\tbranches 0\n",
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeFile(t, dir, "cover.out", goProfile)
			args := append([]string{"--config", emptyConfig(t, dir)}, tc.args(dir)...)

			var stdout, stderr bytes.Buffer
			cmd := NewRootCmd(&stdout, &stderr)
			cmd.SetArgs(args)
			err := cmd.Execute()
			if tc.expectErr != "" {
				assert.EqualError(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectStdout, stdout.String())
			if tc.expectFile != "" {
				contents, err := os.ReadFile(filepath.Join(dir, "out", "files.txt"))
				require.NoError(t, err)
				assert.Equal(t, tc.expectFile, string(contents))
			}
		})
	}
}
