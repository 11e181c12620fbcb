package logging_test

import (
	"bytes"
	"testing"

	"github.com/jrsteele09/go-wiki-client/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

type stubConfig struct {
	env   string
	level string
}

func (s stubConfig) GetEnv() string      { return s.env }
func (s stubConfig) GetLogLevel() string { return s.level }

func restoreLogger(t *testing.T) {
	t.Helper()
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupJSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	logging.Setup(stubConfig{env: "PROD", level: "warn"}, &buf)
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"message":"shown"`)
}

func TestSetupConsole(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	logging.Setup(stubConfig{env: "DEV", level: "nonsense"}, &buf)
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.NotContains(t, buf.String(), `"message"`)
}
