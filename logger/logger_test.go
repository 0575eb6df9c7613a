package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogEmitsBeforeInit(t *testing.T) {
	// The package default must accept events so that anything logged during
	// config loading is not silently dropped.
	assert.True(t, Log.Info().Enabled())
}

func TestInitLevel(t *testing.T) {
	Init("production", "warn")
	assert.Equal(t, zerolog.WarnLevel, Log.GetLevel())
	assert.False(t, Log.Info().Enabled())
	assert.True(t, Log.Error().Enabled())

	Init("development", "debug")
	assert.Equal(t, zerolog.DebugLevel, Log.GetLevel())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}
