package app_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jrsteele09/go-wiki-client/app"
	"github.com/jrsteele09/go-wiki-client/interceptor"
	"github.com/jrsteele09/go-wiki-client/notifications"
	"github.com/jrsteele09/go-wiki-client/router"
	"github.com/jrsteele09/go-wiki-client/sessions"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesInjectedContext(t *testing.T) {
	var notified []notifications.Notification
	var navigated []string
	ctx := &app.Context{
		Sessions:      sessions.NewMemoryStore(),
		Notifications: notifications.SinkFunc(func(n notifications.Notification) { notified = append(notified, n) }),
		Router:        router.NavigatorFunc(func(path string) { navigated = append(navigated, path) }),
	}
	require.NoError(t, ctx.Sessions.Set(sessions.Session{User: "admin", Token: "T"}))

	var auth string
	backend := interceptor.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		auth = req.Header.Get("Authorization")
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Request:    req,
		}, nil
	})

	rt := interceptor.Chain(backend, ctx.Middleware()...)
	req, err := http.NewRequest(http.MethodPut, "http://wiki.local/api/page/intro", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	require.Equal(t, "Bearer T", auth)
	require.Equal(t, []string{router.RouteLogin}, navigated)
	require.Len(t, notified, 1)
	require.Equal(t, notifications.SeverityDanger, notified[0].Severity)
	require.Equal(t, interceptor.DefaultForbiddenMessage, notified[0].Message)
}

func TestNew(t *testing.T) {
	ctx := app.New()
	require.NotNil(t, ctx.Sessions)
	require.NotNil(t, ctx.Notifications)
	require.NotNil(t, ctx.Router)
	require.Len(t, ctx.Middleware(), 2)
}
