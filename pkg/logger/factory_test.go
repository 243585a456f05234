package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailwright/mailwright/pkg/logger"
)

func TestNewJSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "mailwright")),
	)
	log.Info("hello", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "value", record["key"])
	assert.Equal(t, "mailwright", record["service"])
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(&buf),
	)
	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithDevelopment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("mailwright"),
		logger.WithOutput(&buf),
	)
	log.Debug("debugging")

	out := buf.String()
	assert.Contains(t, out, "debugging")
	assert.Contains(t, out, "service=mailwright")
}

func TestWithFormatPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestNoopDiscardsEverything(t *testing.T) {
	t.Parallel()

	log := logger.Noop()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
