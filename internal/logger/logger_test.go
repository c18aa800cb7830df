package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrbrand/internal/logger"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithService("qrbrand", "test"),
		logger.WithAttr(slog.String("region", "eu")),
	)
	log.Info("hello", logger.Error(errors.New("boom")), logger.Duration(time.Second))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "qrbrand", rec["service"])
	assert.Equal(t, "test", rec["env"])
	assert.Equal(t, "eu", rec["region"])
	assert.Equal(t, "boom", rec["error"])
	assert.Contains(t, rec, "duration")
}

func TestLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("warn"))
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug), logger.WithLevelName("nonsense"))
	log.Debug("still debug")
	assert.Contains(t, buf.String(), "still debug")
}

func TestTextIsDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.New(logger.WithOutput(&buf), logger.WithFormat("yaml")).Info("x", logger.Error(nil))
	assert.Contains(t, buf.String(), "msg=x")
	assert.NotContains(t, buf.String(), "error")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	} {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}
