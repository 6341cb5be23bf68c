package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{
		"debug": LogLevelDebug, "INFO": LogLevelInfo, "warning": LogLevelWarn,
		"error": LogLevelError, "off": LogLevelNone, "": LogLevelInfo,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN(9)", LogLevel(9).String())
}

func TestGologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewGolog(&buf, LogLevelWarn)

	logger.Info("hidden %d", 1)
	assert.Empty(t, buf.String())

	logger.Warn("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "[traverser]")

	logger.SetLevel(LogLevelNone)
	buf.Reset()
	logger.Error("nothing")
	assert.Empty(t, buf.String())
	assert.Equal(t, LogLevelNone, logger.GetLevel())
}

func TestNewGologLogger_DefaultsToInfo(t *testing.T) {
	logger := NewGologLogger(golog.New())
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestLogrusLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(&buf, LogLevelDebug).WithFields(map[string]any{"component": "playback"})

	logger.Debug("step %d", 3)
	out := buf.String()
	assert.Contains(t, out, "step 3")
	assert.Contains(t, out, "component=playback")

	buf.Reset()
	logger.SetLevel(LogLevelError)
	logger.Warn("dropped")
	assert.Empty(t, buf.String())
}

func TestNewLogrusLogger_ReadsLevel(t *testing.T) {
	lg := logrus.New()
	lg.SetLevel(logrus.WarnLevel)
	assert.Equal(t, LogLevelWarn, NewLogrusLogger(lg).GetLevel())
}

func TestNew_Backends(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("logrus", &buf, LogLevelInfo)
	require.NoError(t, err)
	assert.IsType(t, &LogrusLogger{}, l)

	l, err = New("golog", &buf, LogLevelInfo)
	require.NoError(t, err)
	assert.IsType(t, &GologLogger{}, l)

	_, err = New("zap", &buf, LogLevelInfo)
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	prev := GetDefaultLogger()
	t.Cleanup(func() { SetDefaultLogger(prev) })

	var buf bytes.Buffer
	SetDefaultLogger(NewGolog(&buf, LogLevelDebug))
	Info("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")

	SetDefaultLogger(nil)
	assert.IsType(t, &NoOpLogger{}, GetDefaultLogger())
}
