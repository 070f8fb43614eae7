package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("WARN", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)
}

func TestInit_ReplacesGlobals(t *testing.T) {
	before := zap.L()
	flush, err := Init("error", "json")
	require.NoError(t, err)
	assert.NotSame(t, before, zap.L())
	assert.False(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	flush()
	assert.Same(t, before, zap.L())
}
