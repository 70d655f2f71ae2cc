package logging_test

import (
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		logger, err := logging.New(level)
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, logger)
		_ = logger.Sync()
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logging.New("loud")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNop(t *testing.T) {
	logger := logging.Nop()

	require.NotNil(t, logger)
	logger.Info("discarded")
}
