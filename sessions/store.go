package sessions

import (
	"sync"

	"github.com/jrsteele09/go-wiki-client/internal/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Store holds the single active Session.
// Writers are the login and logout flows; the request middleware only reads.
type Store interface {
	oauth2.TokenSource

	// Current returns the active session. Expired sessions are cleared and reported absent.
	Current() (Session, bool)

	// Set replaces any existing session
	Set(session Session) error

	// Clear removes the active session
	Clear()
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	session *Session
}

// NewMemoryStore creates an empty session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Session{}, false
	}
	if !s.session.Valid(NowTimeFunc()) {
		log.Debug().Str("user", s.session.User).Time("expired_at", s.session.ExpiresAt).Msg("Session expired")
		s.session = nil
		return Session{}, false
	}
	return *s.session, true
}

func (s *MemoryStore) Set(session Session) error {
	if session.Token == "" {
		return errors.Wrapf(errors.ErrInvalidToken, "sessions.Set")
	}
	if !session.Valid(NowTimeFunc()) {
		return errors.Wrapf(errors.ErrSessionExpired, "sessions.Set")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Token implements oauth2.TokenSource
func (s *MemoryStore) Token() (*oauth2.Token, error) {
	session, ok := s.Current()
	if !ok {
		return nil, errors.ErrNoSession
	}
	return session.OAuth2Token(), nil
}
