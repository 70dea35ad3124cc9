package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/config"
)

func TestNew_Stdout(t *testing.T) {
	log, err := New(config.LoggerConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	log, err := New(config.LoggerConfig{Output: "file", FilePath: path})
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, level("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, level("error"))
	assert.Equal(t, zapcore.InfoLevel, level("nonsense"))
}

func TestNew_Stderr(t *testing.T) {
	log, err := New(config.LoggerConfig{Output: "stderr", Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}
