package sessions

import (
	"time"

	"golang.org/x/oauth2"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Session is the authenticated user's bearer token and its expiry.
// A client holds at most one Session at a time.
type Session struct {
	User      string    // User ID decoded from the token
	Token     string    // Raw bearer token (JWT) issued by /user/login
	ExpiresAt time.Time // Token expiry; zero when the token carries no exp claim
}

// Valid reports whether the session can still be sent to the backend.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// OAuth2Token exposes the session as a bearer token.
func (s Session) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: s.Token,
		TokenType:   "Bearer",
		Expiry:      s.ExpiresAt,
	}
}
