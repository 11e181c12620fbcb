package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/go-wiki-client/internal/config"
	"github.com/jrsteele09/go-wiki-client/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("WIKI_BACKEND_URL", "")
	t.Setenv("WIKI_REQUEST_TIMEOUT", "")
	t.Setenv("WIKI_CONFIG_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", c.GetBackendURL())
	require.Equal(t, 30*time.Second, c.GetRequestTimeout())
	require.Equal(t, "info", c.GetLogLevel())
	require.False(t, c.GetOTLPInsecure())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WIKI_BACKEND_URL", "https://wiki.example.com/")
	t.Setenv("WIKI_REQUEST_TIMEOUT", "5s")
	t.Setenv("WIKI_SESSION_FILE", "/tmp/wiki-session")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("WIKI_CONFIG_FILE", "")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, "https://wiki.example.com", c.GetBackendURL())
	require.Equal(t, 5*time.Second, c.GetRequestTimeout())
	require.Equal(t, "/tmp/wiki-session", c.GetSessionFile())
	require.Equal(t, "debug", c.GetLogLevel())
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("WIKI_REQUEST_TIMEOUT", "soon")
	require.Equal(t, 30*time.Second, config.HTTP{}.GetRequestTimeout())
}

func TestApplyFile(t *testing.T) {
	const fileOnly = "GO_WIKI_TEST_FILE_ONLY"
	const envWins = "GO_WIKI_TEST_ENV_WINS"
	require.NoError(t, os.Unsetenv(fileOnly))
	t.Cleanup(func() { os.Unsetenv(fileOnly) })
	t.Setenv(envWins, "from-env")

	path := filepath.Join(t.TempDir(), "wiki.yaml")
	content := fileOnly + ": from-file\n" + envWins + ": from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, config.ApplyFile(path))
	require.Equal(t, "from-file", os.Getenv(fileOnly))
	require.Equal(t, "from-env", os.Getenv(envWins))
}

func TestApplyFileErrors(t *testing.T) {
	require.Error(t, config.ApplyFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
	require.Error(t, config.ApplyFile(path))
}

func TestServerConfig(t *testing.T) {
	t.Setenv("WIKI_DEVSERVER_ADDR", "")
	t.Setenv("WIKI_DEVSERVER_TOKEN_EXPIRY", "")
	t.Setenv("WIKI_DEVSERVER_ADMIN_USER", "")
	s := config.Server{}
	require.Equal(t, ":8000", s.GetListenAddr())
	require.Equal(t, time.Hour, s.GetTokenExpiry())
	require.Equal(t, "admin", s.GetAdminUsername())

	t.Setenv("WIKI_DEVSERVER_TOKEN_EXPIRY", "15m")
	t.Setenv("WIKI_DEVSERVER_ADMIN_USER", "root")
	require.Equal(t, 15*time.Minute, s.GetTokenExpiry())
	require.Equal(t, "root", s.GetAdminUsername())

	t.Setenv("WIKI_DEVSERVER_TOKEN_EXPIRY", "-1s")
	require.Equal(t, time.Hour, s.GetTokenExpiry())
}

func TestNewRejectsBadConfigFile(t *testing.T) {
	t.Setenv("WIKI_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := config.New()
	require.ErrorIs(t, err, errors.ErrInvalidConfig)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
	t.Setenv("WIKI_CONFIG_FILE", path)
	_, err = config.New()
	require.ErrorIs(t, err, errors.ErrInvalidConfig)
}
