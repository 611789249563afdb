package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triviahq/trivia-api/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	require.NotNil(t, Get())
	Get().Info("discarded")
}

func TestInitialize(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	testCases := []struct {
		name          string
		cfg           config.LoggerConfig
		expectedLevel zapcore.Level
	}{
		{name: "Debug development", cfg: config.LoggerConfig{Level: "debug", Env: "development"}, expectedLevel: zapcore.DebugLevel},
		{name: "Warn production", cfg: config.LoggerConfig{Level: "warn", Env: "production"}, expectedLevel: zapcore.WarnLevel},
		{name: "Unknown level falls back to info", cfg: config.LoggerConfig{Level: "chatty"}, expectedLevel: zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, Initialize(tc.cfg))
			assert.True(t, Get().Core().Enabled(tc.expectedLevel))
			assert.False(t, Get().Core().Enabled(tc.expectedLevel-1))
		})
	}
}
