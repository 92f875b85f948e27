package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockspacer/odamex/logger"
)

func TestNewRootLogger(t *testing.T) {
	log, err := logger.NewRootLogger(logger.Config{Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, log)

	named := logger.NewLogger(log, "netmsg")
	require.Equal(t, "netmsg", named.Desugar().Name())
}

func TestNewRootLogger_InvalidLevel(t *testing.T) {
	_, err := logger.NewRootLogger(logger.Config{Level: "shouting"})
	require.Error(t, err)
}

func TestNewNopLogger(t *testing.T) {
	log := logger.NewNopLogger()
	require.NotNil(t, log)
	log.Debugf("discarded %d", 42)
}
