package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-recommender/internal/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("builds a logger at the requested level", func(t *testing.T) {
		log, err := logger.New("info", "api")
		require.NoError(t, err)
		assert.NotNil(t, log)
		assert.False(t, log.Core().Enabled(-1)) // debug is off
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log, err := logger.New("shouting", "worker")
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(0))
		assert.False(t, log.Core().Enabled(-1))
	})

	t.Run("debug switches to console encoding", func(t *testing.T) {
		log, err := logger.New("debug", "api")
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(-1))
	})
}
