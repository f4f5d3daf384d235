package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			log, err := New(lvl)
			require.NoError(t, err)
			assert.IsType(t, &zap.SugaredLogger{}, log)
			assert.NotPanics(t, func() {
				log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New("loud")
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestInitialize_ReplacesGlobal(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	require.NoError(t, Initialize("debug"))
	assert.NotSame(t, originalLog, Log)
}

func TestInitialize_InvalidLevelKeepsGlobal(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.Error(t, Initialize("not-a-level"))
	assert.Same(t, originalLog, Log)
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}
