package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := New(buf, level, false)
	l.now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 5, 7, 123000000, time.UTC)
	}
	return l
}

func TestLoggerFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)
	l.Info("wrote %d files", 3)
	assert.Equal(t, "[09:05:07.123 INFO] wrote 3 files\n", buf.String())
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		level       LogLevel
		expectOut   string
	}{
		{
			description: "debug shows everything",
			level:       LevelDebug,
			expectOut: "[09:05:07.123 DEBUG] d\n" +
				"[09:05:07.123 INFO] i\n" +
				"[09:05:07.123 WARN] w\n" +
				"[09:05:07.123 ERROR] e\n",
		},
		{
			description: "warn hides debug and info",
			level:       LevelWarn,
			expectOut: "[09:05:07.123 WARN] w\n" +
				"[09:05:07.123 ERROR] e\n",
		},
		{
			description: "none hides everything",
			level:       LevelNone,
			expectOut:   "",
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := fixedLogger(&buf, tc.level)
			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")
			assert.Equal(t, tc.expectOut, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelNone, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}
