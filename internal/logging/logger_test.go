package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eykd/safe-ascii/internal/logging"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, logging.Level(-1))
	assert.Equal(t, slog.LevelWarn, logging.Level(0))
	assert.Equal(t, slog.LevelInfo, logging.Level(1))
	assert.Equal(t, slog.LevelDebug, logging.Level(2))
	assert.Equal(t, slog.LevelDebug, logging.Level(5))
}

func TestNew_FiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, 0, false)
	logger.Info("hidden")
	logger.Warn("shown", "source", "a.bin")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "source=a.bin")
}

func TestNew_NoColorHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	logging.New(&buf, 2, false).Debug("plain")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestColorEnabled_NonFileWriter(t *testing.T) {
	assert.False(t, logging.ColorEnabled(&bytes.Buffer{}))
}

func TestColorEnabled_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, logging.ColorEnabled(&bytes.Buffer{}))
}
