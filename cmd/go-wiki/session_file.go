package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrsteele09/go-wiki-client/sessions"
	"github.com/rs/zerolog/log"
)

// restoreSession loads the token saved by a previous login into store.
// A missing, unreadable or expired token leaves the store empty.
func restoreSession(path string, store sessions.Store) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read session file")
		}
		return
	}

	session, err := sessions.FromToken(strings.TrimSpace(string(data)))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Ignoring invalid session file")
		return
	}
	if err := store.Set(session); err != nil {
		log.Debug().Err(err).Msg("Saved session not restored")
		removeSession(path)
	}
}

func saveSession(path string, session sessions.Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(session.Token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func removeSession(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove session file")
	}
}
