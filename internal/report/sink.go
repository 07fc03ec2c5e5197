package report

import (
	"io"
	"path"

	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

// Sink accepts the final report text
type Sink interface {
	// Write emits text as the complete report
	Write(text string) error
	// Destination describes where text is written, for logs
	Destination() string
}

// FileSink writes the report to a file, replacing any previous contents.
// Concurrent sinks for the same path are not coordinated: the last writer wins.
type FileSink struct {
	fs   hackpadfs.FS
	dir  string
	name string
}

var _ Sink = (*FileSink)(nil)

// NewFileSink creates a sink writing name inside dir. Both are FS paths on fs.
func NewFileSink(fs hackpadfs.FS, dir, name string) *FileSink {
	return &FileSink{fs: fs, dir: dir, name: name}
}

// Path returns the FS path of the report file
func (s *FileSink) Path() string {
	return path.Join(s.dir, s.name)
}

// Destination implements Sink
func (s *FileSink) Destination() string {
	return s.Path()
}

// Write creates the report directory if needed, then writes text as the full file contents
func (s *FileSink) Write(text string) (err error) {
	filePath := s.Path()
	dir := path.Dir(filePath)
	if err := hackpadfs.MkdirAll(s.fs, dir, 0o755); err != nil {
		return errors.Wrapf(err, "create report directory %q", dir)
	}
	f, err := hackpadfs.OpenFile(s.fs, filePath, hackpadfs.FlagWriteOnly|hackpadfs.FlagCreate|hackpadfs.FlagTruncate, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open report file %q", filePath)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "close report file %q", filePath)
		}
	}()
	if _, err := hackpadfs.WriteFile(f, []byte(text)); err != nil {
		return errors.Wrapf(err, "write report file %q", filePath)
	}
	return nil
}

// ConsoleSink writes the report to a stream such as stdout in a single write
type ConsoleSink struct {
	w    io.Writer
	name string
}

var _ Sink = (*ConsoleSink)(nil)

// NewConsoleSink creates a sink writing to w. name labels the stream in logs.
func NewConsoleSink(w io.Writer, name string) *ConsoleSink {
	return &ConsoleSink{w: w, name: name}
}

// Destination implements Sink
func (s *ConsoleSink) Destination() string {
	return s.name
}

// Write emits text unchanged. The trailing newline already in text is the only one.
func (s *ConsoleSink) Write(text string) error {
	_, err := io.WriteString(s.w, text)
	return errors.Wrapf(err, "write report to %s", s.name)
}
