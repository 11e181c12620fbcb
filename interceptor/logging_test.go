package interceptor_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-wiki-client/interceptor"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })
	return &buf
}

func TestLogging(t *testing.T) {
	buf := captureLog(t)
	backend := interceptor.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusNotFound, Body: http.NoBody, Request: req}, nil
	})
	rt := interceptor.Chain(backend, interceptor.Logging())

	req, err := http.NewRequest(http.MethodGet, "http://wiki.local/api/page/missing", nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.Contains(t, buf.String(), "/api/page/missing")
	require.Contains(t, buf.String(), "404")
}

func TestLoggingTransportError(t *testing.T) {
	buf := captureLog(t)
	failure := errors.New("dial tcp: refused")
	backend := interceptor.RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, failure
	})
	rt := interceptor.Chain(backend, interceptor.Logging())

	req, err := http.NewRequest(http.MethodPost, "http://wiki.local/user/login", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.ErrorIs(t, err, failure)
	require.Contains(t, buf.String(), "dial tcp: refused")
}
