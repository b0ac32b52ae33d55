package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"TarotDumpPump/internal/config"
)

func TestBuildRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lg, err := build(config.LoggingConfig{Level: "warn"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	lg.Named("extractor").Info("скрыто")
	lg.Named("extractor").Warn("видно", zap.Int("count", 3))
	require.NoError(t, lg.Sync())

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "extractor")
	assert.Contains(t, out, `{"count": 3}`)
}

func TestBuildWritesErrorsToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "pump.log")
	var buf bytes.Buffer
	lg, err := build(config.LoggingConfig{Level: "debug", LogFile: logFile}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	lg.Info("только в консоль")
	lg.Error("и в файл")
	require.NoError(t, lg.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "и в файл")
	assert.NotContains(t, string(data), "только в консоль")
	assert.Contains(t, buf.String(), "только в консоль")
}

func TestBuildRejectsUnknownLevel(t *testing.T) {
	_, err := build(config.LoggingConfig{Level: "chatty"}, zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
}
