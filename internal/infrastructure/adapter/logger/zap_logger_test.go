package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFromCore(obsCore)

	log.Info("Link created", map[string]any{"link_id": "l-1", "error": errors.New("boom")})
	log.SetLevel(core.LogLevelWarn)
	log.Info("dropped", nil)
	log.Debug("dropped", nil)
	log.Warn("kept", nil)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	require.Equal(t, 2, logs.Len())

	first := logs.All()[0]
	assert.Equal(t, "Link created", first.Message)
	fields := first.ContextMap()
	assert.Equal(t, "l-1", fields["link_id"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "kept", logs.All()[1].Message)
}

func TestNewZapLogger_Config(t *testing.T) {
	t.Run("writes json to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		log, err := NewZapLogger(config.LoggerConfig{Level: "debug", Format: "json", Output: path}, true)
		require.NoError(t, err)
		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
		log.Info("hello", nil)
		require.NoError(t, log.Flush())
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := NewZapLogger(config.LoggerConfig{Format: "xml"}, false)
		assert.Error(t, err)
	})
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelDebug)
	log.Error("ignored", map[string]any{"k": 1})
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.NoError(t, log.Flush())
}
