package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/logger"
)

// TestDefaultLoggerIsUsable verifies the package-level logger is never nil.
func TestDefaultLoggerIsUsable(t *testing.T) {
	require.NotNil(t, logger.Logger)
	assert.NotPanics(t, func() { logger.Logger.Debugw("startup", logger.FieldName, "A") })
}

// TestInitialize verifies both output modes build a logger.
func TestInitialize(t *testing.T) {
	prev := logger.Logger
	t.Cleanup(func() { logger.Logger = prev; logger.JSONOutput = false })

	require.NoError(t, logger.Initialize(true, false))
	assert.True(t, logger.JSONOutput)
	assert.NotNil(t, logger.Named("world"))

	require.NoError(t, logger.Initialize(false, true))
	assert.False(t, logger.JSONOutput)
}
