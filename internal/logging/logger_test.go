// SPDX-License-Identifier: MIT
package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, l)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	dev, err := New(DevelopmentConfig())
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	_, err = New(Config{Level: "nope"})
	require.Error(t, err)

	logger, err = New(Config{Level: "error"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewDefaultAndNop(t *testing.T) {
	assert.NotNil(t, NewDefault())
	assert.False(t, NewNop().Core().Enabled(zapcore.ErrorLevel))
}

func TestForRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := &Logger{Logger: zap.New(core)}

	base.ForRun("nullspace").Info("done", zap.Int("dim", 2))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "nullspace", fields["command"])
	assert.Len(t, fields["run_id"], 8)
	assert.Equal(t, int64(2), fields["dim"])
}
