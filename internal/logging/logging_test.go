package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() config.LogSettings {
	return config.LogSettings{Level: "info", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
}

func restoreLogger(t *testing.T) {
	t.Helper()
	std := log.StandardLogger()
	out, formatter, level := std.Out, std.Formatter, std.GetLevel()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFormatter(formatter)
		log.SetLevel(level)
	})
}

func TestSetup_DiscardByDefault(t *testing.T) {
	restoreLogger(t)

	require.NoError(t, Setup(validSettings()))

	assert.Equal(t, io.Discard, log.StandardLogger().Out)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestSetup_Stderr(t *testing.T) {
	restoreLogger(t)
	s := validSettings()
	s.File = config.LogFileStderr
	s.Level = "debug"

	require.NoError(t, Setup(s))

	assert.Equal(t, os.Stderr, log.StandardLogger().Out)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetup_File(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "noise.log")
	s := validSettings()
	s.File = path

	require.NoError(t, Setup(s))

	writer, ok := log.StandardLogger().Out.(*lumberjack.Logger)
	require.True(t, ok, "expected a rotating file writer")
	t.Cleanup(func() { writer.Close() })
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	log.WithField("component", "test").Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestSetup_InvalidSettingsLeaveLoggerAlone(t *testing.T) {
	restoreLogger(t)
	log.SetLevel(log.WarnLevel)
	s := validSettings()
	s.Level = "loud"

	assert.Error(t, Setup(s))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestDiscard(t *testing.T) {
	restoreLogger(t)
	log.SetOutput(os.Stderr)

	Discard()

	assert.Equal(t, io.Discard, log.StandardLogger().Out)
}
