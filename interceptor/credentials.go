package interceptor

import (
	"net/http"

	"github.com/jrsteele09/go-wiki-client/sessions"
)

// SessionSource yields the active session, if there is one.
// sessions.Store satisfies it.
type SessionSource interface {
	Current() (sessions.Session, bool)
}

// AttachCredentials sets "Authorization: Bearer <token>" on every outgoing request
// while a valid session exists. Without one the request is sent untouched.
func AttachCredentials(source SessionSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			session, ok := source.Current()
			if ok && session.Valid(sessions.NowTimeFunc()) {
				// RoundTrippers must not modify the caller's request
				req = req.Clone(req.Context())
				session.OAuth2Token().SetAuthHeader(req)
			}
			return next.RoundTrip(req)
		})
	}
}
