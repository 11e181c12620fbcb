package sessions_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-wiki-client/internal/errors"
	"github.com/jrsteele09/go-wiki-client/sessions"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func freezeTime(t *testing.T, now time.Time) {
	t.Helper()
	original := sessions.NowTimeFunc
	sessions.NowTimeFunc = func() time.Time { return now }
	t.Cleanup(func() { sessions.NowTimeFunc = original })
}

func signToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("1234"))
	require.NoError(t, err)
	return token
}

func TestFromToken(t *testing.T) {
	exp := testNow.Add(time.Hour)
	raw := signToken(t, jwtlib.MapClaims{"id": "admin", "exp": exp.Unix()})

	s, err := sessions.FromToken(raw)
	require.NoError(t, err)
	require.Equal(t, "admin", s.User)
	require.Equal(t, raw, s.Token)
	require.True(t, exp.Equal(s.ExpiresAt))
}

func TestFromTokenFallsBackToSubject(t *testing.T) {
	raw := signToken(t, jwtlib.MapClaims{"sub": "user-1"})

	s, err := sessions.FromToken(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", s.User)
	require.True(t, s.ExpiresAt.IsZero())
}

func TestFromTokenErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not a jwt", "abc.def"},
		{"garbage payload", "aaa.!!!.ccc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sessions.FromToken(tt.token)
			require.ErrorIs(t, err, errors.ErrInvalidToken)
		})
	}
}

func TestSessionValid(t *testing.T) {
	require.False(t, sessions.Session{}.Valid(testNow))
	require.True(t, sessions.Session{Token: "t"}.Valid(testNow))
	require.True(t, sessions.Session{Token: "t", ExpiresAt: testNow.Add(time.Second)}.Valid(testNow))
	require.False(t, sessions.Session{Token: "t", ExpiresAt: testNow}.Valid(testNow))
}

func TestOAuth2Token(t *testing.T) {
	s := sessions.Session{Token: "abc", ExpiresAt: testNow}
	tok := s.OAuth2Token()
	require.Equal(t, "abc", tok.AccessToken)
	require.Equal(t, "Bearer", tok.Type())
	require.Equal(t, testNow, tok.Expiry)
}

func TestMemoryStore(t *testing.T) {
	freezeTime(t, testNow)
	store := sessions.NewMemoryStore()

	_, ok := store.Current()
	require.False(t, ok)
	_, err := store.Token()
	require.ErrorIs(t, err, errors.ErrNoSession)

	require.NoError(t, store.Set(sessions.Session{User: "a", Token: "first", ExpiresAt: testNow.Add(time.Hour)}))
	require.NoError(t, store.Set(sessions.Session{User: "b", Token: "second", ExpiresAt: testNow.Add(time.Hour)}))

	current, ok := store.Current()
	require.True(t, ok)
	require.Equal(t, "second", current.Token)

	tok, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "second", tok.AccessToken)

	store.Clear()
	_, ok = store.Current()
	require.False(t, ok)
}

func TestMemoryStoreRejectsEmptyAndStaleSessions(t *testing.T) {
	freezeTime(t, testNow)
	store := sessions.NewMemoryStore()

	require.ErrorIs(t, store.Set(sessions.Session{User: "a"}), errors.ErrInvalidToken)
	require.ErrorIs(t, store.Set(sessions.Session{Token: "t", ExpiresAt: testNow.Add(-time.Minute)}), errors.ErrSessionExpired)

	_, ok := store.Current()
	require.False(t, ok)
}

func TestMemoryStoreExpiresSession(t *testing.T) {
	freezeTime(t, testNow)
	store := sessions.NewMemoryStore()
	require.NoError(t, store.Set(sessions.Session{Token: "t", ExpiresAt: testNow.Add(time.Minute)}))

	freezeTime(t, testNow.Add(2*time.Minute))
	_, ok := store.Current()
	require.False(t, ok)

	// Still gone after time moves back: expiry cleared it.
	freezeTime(t, testNow)
	_, ok = store.Current()
	require.False(t, ok)
}
